package routes

import (
	controllers "github.com/saurav266/CureWrap-sub001/controllers/products"
	"github.com/saurav266/CureWrap-sub001/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ProductsRoute(app *fiber.App) {
	app.Get("/api/get-all-products", middlewares.AuthMiddleware, controllers.GetAllProducts)

	//For admin add-product
	app.Post("/api/admin/add-product", middlewares.AuthMiddleware, middlewares.AdminMiddleware, controllers.AddProduct)

	//Search products with name
	app.Get("/api/search", controllers.SearchProducts)

	//Get popular products based on brandName
	app.Get("/api/popularBrand", controllers.GetPopularProducts)

	//Fetch productDetails
	app.Get("/api/details", controllers.FetchProductDetails)
}
