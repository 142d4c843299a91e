// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusschedule_backend/internals/configs"
	"campusschedule_backend/internals/constants"
	departmentRoutes "campusschedule_backend/internals/features/college/departments/route"
	facultyRoutes "campusschedule_backend/internals/features/college/faculties/route"
	timetableRoutes "campusschedule_backend/internals/features/college/timetable/route"
	middlewares "campusschedule_backend/internals/middlewares"
	authMiddleware "campusschedule_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	validate := validator.New()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	// Read-only: grid, export, arsip, dropdown data. Tanpa JWT.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	departmentRoutes.DepartmentPublicRoutes(public, db, validate)
	facultyRoutes.FacultyPublicRoutes(public, db, validate)
	timetableRoutes.TimetablePublicRoutes(public, db, validate)

	// ===================== ADMIN =====================
	// Mutasi timetable: JWT + role admin/operator.
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.OnlyRoles(
			constants.RoleErrorOperator("manajemen timetable"),
			constants.OperatorAndUp...,
		),
		middlewares.WriteRateLimiter(),
	)
	departmentRoutes.DepartmentAdminRoutes(admin, db, validate)
	facultyRoutes.FacultyAdminRoutes(admin, db, validate)
	timetableRoutes.TimetableAdminRoutes(admin, db, validate)
}
