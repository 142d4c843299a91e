// file: internals/features/college/faculties/route/faculty_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyController "campusschedule_backend/internals/features/college/faculties/controller"
)

// Public: read-only list & detail (dipakai form builder di FE).
func FacultyPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := facultyController.NewFacultyController(db, v)

	faculties := r.Group("/faculties")
	faculties.Get("/", ctl.List)
	faculties.Get("/:faculty_id", ctl.GetByID)
}

// Admin: full CRUD.
func FacultyAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := facultyController.NewFacultyController(db, v)

	faculties := r.Group("/faculties")
	faculties.Post("/", ctl.Create)
	faculties.Patch("/:faculty_id", ctl.Update)
	faculties.Delete("/:faculty_id", ctl.Delete)
}
