package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "campusdesk_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware stack in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RequestIDMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
}
