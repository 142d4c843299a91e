package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	loggerMiddleware "campusschedule_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dalam urutan yang benar:
// recovery paling luar, lalu logging, CORS, rate limit, dan injeksi DB.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(DBMiddleware(db))
}
