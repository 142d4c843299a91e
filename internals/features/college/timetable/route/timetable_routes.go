// file: internals/features/college/timetable/route/timetable_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	timetableController "campusschedule_backend/internals/features/college/timetable/controller"
	middlewares "campusschedule_backend/internals/middlewares"
)

/*
Public routes: grid view, export, dan arsip (read-only).
Contoh mount: TimetablePublicRoutes(app.Group("/api/public"), db)

	GET /api/public/departments/:department_id/timetable/grid?semester=
	GET /api/public/departments/:department_id/timetable/export/csv
	GET /api/public/departments/:department_id/timetable/export/json
	GET /api/public/departments/:department_id/history
	GET /api/public/history/search?department_id=&year=&semester=
	GET /api/public/history/:history_id
*/
func TimetablePublicRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	gridCtl := timetableController.NewTimetableGridController(db)
	historyCtl := timetableController.NewTimetableHistoryController(db, v)

	timetable := r.Group("/departments/:department_id/timetable")
	timetable.Get("/grid", gridCtl.Grid)

	export := timetable.Group("/export", middlewares.ExportRateLimiter())
	export.Get("/csv", gridCtl.ExportCSV)
	export.Get("/json", gridCtl.ExportJSON)

	r.Get("/departments/:department_id/history", historyCtl.ListByDepartment)
	history := r.Group("/history")
	history.Get("/search", historyCtl.Search)
	history.Get("/:history_id", historyCtl.Detail)
}

/*
Admin routes: mutasi entries + arsip. Mount di group ber-JWT + RoleCheck.

	POST   /api/a/timetable/entries            (department_id di body)
	POST   /api/a/timetable/check-conflicts    (department_id di body)
	GET    /api/a/departments/:department_id/timetable/entries?semester=&day=
	DELETE /api/a/departments/:department_id/timetable/entries?semester=
	DELETE /api/a/timetable/entries/:entry_id
	POST   /api/a/departments/:department_id/timetable/archive
*/
func TimetableAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	entryCtl := timetableController.NewTimetableEntryController(db, v)
	historyCtl := timetableController.NewTimetableHistoryController(db, v)

	entries := r.Group("/timetable")
	entries.Post("/entries", entryCtl.Create)
	entries.Post("/check-conflicts", entryCtl.CheckConflicts)
	entries.Delete("/entries/:entry_id", entryCtl.Delete)

	timetable := r.Group("/departments/:department_id/timetable")
	timetable.Get("/entries", entryCtl.List)
	timetable.Delete("/entries", entryCtl.DeleteAll)
	timetable.Post("/archive", historyCtl.Archive)
}
