package routes

import (
	categoryController "github.com/saurav266/CureWrap-sub001/controllers/categories"
	"github.com/saurav266/CureWrap-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CategoryRoutes(app *fiber.App) {
	app.Get("/api/categories", categoryController.GetCategories)

	//For admin add-category
	app.Post("/api/admin/add-category", middlewares.AuthMiddleware, middlewares.AdminMiddleware, categoryController.AddCategory)
}
