package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saurav266/CureWrap-sub001/configs"
	"github.com/saurav266/CureWrap-sub001/models"
	"github.com/saurav266/CureWrap-sub001/responses"
)

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

// getProducts
func GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pageStr := c.Query("page", "1")
	limitStr := c.Query("limit", "10")
	category := c.Query("category", "")

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil {
		page = 1
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil {
		limit = 10
	}

	skip := (page - 1) * limit

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	totalProducts, err := productCollection.CountDocuments(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error counting products",
			Result:  nil,
		})
	}

	findOptions := options.Find()
	findOptions.SetSkip(skip)
	findOptions.SetLimit(limit)

	var products []models.Product
	cursor, err := productCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching products",
			Result:  nil,
		})
	}
	if err = cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing products",
			Result:  nil,
		})
	}
	totalPages := (totalProducts + limit - 1) / limit

	status := "success"
	if len(products) == 0 {
		status = "no more products"
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Fetched Products",
		Result: &fiber.Map{
			"status":        status,
			"currentPage":   page,
			"totalPages":    totalPages,
			"totalProducts": totalProducts,
			"products":      products,
		},
	})
}

// Only for admin
func AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing product data",
			Result:  nil,
		})
	}

	if product.Name == "" || product.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Product name and a positive price are required",
			Result:  nil,
		})
	}

	// A product without an explicit return policy falls back to the
	// default replacement window at request time.
	if product.ReturnPolicy != nil && product.ReturnPolicy.Days <= 0 {
		product.ReturnPolicy = nil
	}

	result, err := productCollection.InsertOne(ctx, product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting product",
			Result:  nil,
		})
	}

	product.ID = result.InsertedID.(primitive.ObjectID)

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product added successfully",
		Result:  &fiber.Map{"product": product},
	})
}

// Search products by name, case-insensitive prefix of any word.
func SearchProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Search query is required",
			Result:  nil,
		})
	}

	filter := bson.M{"name": bson.M{"$regex": query, "$options": "i"}}

	cursor, err := productCollection.Find(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error searching products",
			Result:  nil,
		})
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing products",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Search results",
		Result:  &fiber.Map{"products": products},
	})
}

// Popular products for a brand.
func GetPopularProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	brand := c.Query("brand")
	if brand == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Brand is required",
			Result:  nil,
		})
	}

	findOptions := options.Find().SetLimit(10)
	cursor, err := productCollection.Find(ctx, bson.M{"brand": brand}, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching popular products",
			Result:  nil,
		})
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing products",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Popular products fetched",
		Result:  &fiber.Map{"products": products},
	})
}

// Fetch productDetails
func FetchProductDetails(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productId := c.Query("id")
	if productId == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Product ID is required",
			Result:  nil,
		})
	}

	productObjectID, err := primitive.ObjectIDFromHex(productId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
			Result:  nil,
		})
	}

	var product models.Product
	err = productCollection.FindOne(ctx, bson.M{"_id": productObjectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product details fetched",
		Result:  &fiber.Map{"product": product},
	})
}
