package routes

import (
	shippingController "github.com/saurav266/CureWrap-sub001/controllers/shipping"

	"github.com/gofiber/fiber/v2"
)

func ShippingRoutes(app *fiber.App) {
	// Carrier webhook; the carrier authenticates out of band.
	app.Post("/api/shipping/status-update", shippingController.CarrierStatusWebhook)
}
