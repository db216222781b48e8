package main

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/saurav266/CureWrap-sub001/configs"
	"github.com/saurav266/CureWrap-sub001/routes"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := fiber.New()

	configs.ConnectDB()

	routes.UserRoute(app)
	routes.AccountRoute(app)
	routes.AddressRoutes(app)
	routes.CartRoutes(app)
	routes.ProductsRoute(app)
	routes.CategoryRoutes(app)
	routes.OrderRoutes(app)
	routes.ReplacementRoutes(app)
	routes.ShippingRoutes(app)

	addr := ":" + configs.EnvPort()
	log.WithField("addr", addr).Info("Server listening")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
