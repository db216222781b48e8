package routes

import (
	replacementController "github.com/saurav266/CureWrap-sub001/controllers/replacements"
	"github.com/saurav266/CureWrap-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ReplacementRoutes(app *fiber.App) {
	app.Post("/api/request-replacement", middlewares.AuthMiddleware, replacementController.RequestReplacement)
	app.Get("/api/my-replacements", middlewares.AuthMiddleware, replacementController.GetMyReplacements)

	//Admin replacement workflow
	app.Get("/api/admin/replacements", middlewares.AuthMiddleware, middlewares.AdminMiddleware, replacementController.GetAllReplacements)
	app.Post("/api/admin/update-replacement-status", middlewares.AuthMiddleware, middlewares.AdminMiddleware, replacementController.UpdateReplacementStatus)
}
