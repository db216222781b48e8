package routes

import (
	orderController "github.com/saurav266/CureWrap-sub001/controllers/orders"
	"github.com/saurav266/CureWrap-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App) {
	app.Post("/api/create-order", middlewares.AuthMiddleware, orderController.CreateOrder)
	app.Post("/api/verify-payment", middlewares.AuthMiddleware, orderController.VerifyPayment)
	app.Get("/api/get-orders", middlewares.AuthMiddleware, orderController.GetOrders)
	app.Get("/api/order", middlewares.AuthMiddleware, orderController.GetOrderById)
}
