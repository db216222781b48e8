package routes

import (
	cartController "github.com/saurav266/CureWrap-sub001/controllers/cart"
	"github.com/saurav266/CureWrap-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App) {
	app.Post("/api/add-to-cart", middlewares.AuthMiddleware, cartController.AddtoCart)

	app.Post("/api/remove-from-cart", middlewares.AuthMiddleware, cartController.RemoveFromCart)

	app.Post("/api/decrement-from-cart", middlewares.AuthMiddleware, cartController.DecrementFromCart)

	app.Get("/api/fetchCartItems", middlewares.AuthMiddleware, cartController.GetAllCarts)

	app.Get("/api/getCartTotal", middlewares.AuthMiddleware, cartController.GetCartTotals)
}
