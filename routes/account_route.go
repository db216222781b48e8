package routes

import (
	controllers "github.com/saurav266/CureWrap-sub001/controllers/accounts"
	"github.com/saurav266/CureWrap-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AccountRoute(app *fiber.App) {
	app.Post("/api/update-profile", middlewares.AuthMiddleware, controllers.UpdateUserProfile)
	app.Get("/api/get-user-profile", middlewares.AuthMiddleware, controllers.GetUserProfile)
}
