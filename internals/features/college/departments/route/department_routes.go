// file: internals/features/college/departments/route/department_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	departmentController "campusschedule_backend/internals/features/college/departments/controller"
)

/*
Public routes: read-only.
Contoh mount: DepartmentPublicRoutes(app.Group("/api/public"), db)

	GET /api/public/dashboard
	GET /api/public/departments
	GET /api/public/departments/:department_id
	GET /api/public/departments/:department_id/semesters
*/
func DepartmentPublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := departmentController.NewDepartmentController(db, v)

	r.Get("/dashboard", ctl.Dashboard)

	departments := r.Group("/departments")
	departments.Get("/", ctl.List)
	departments.Get("/:department_id", ctl.GetByID)
	departments.Get("/:department_id/semesters", ctl.Semesters)
}

/*
Admin routes: full CRUD + switch semester aktif.
Mount di group yang sudah dipagari Auth + RoleCheck.
*/
func DepartmentAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := departmentController.NewDepartmentController(db, v)

	departments := r.Group("/departments")
	departments.Post("/", ctl.Create)
	departments.Patch("/:department_id", ctl.Update)
	departments.Patch("/:department_id/active-semester", ctl.SetActiveSemester)
	departments.Delete("/:department_id", ctl.Delete)
}
