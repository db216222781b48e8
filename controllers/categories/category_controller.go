package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saurav266/CureWrap-sub001/configs"
	"github.com/saurav266/CureWrap-sub001/models"
	"github.com/saurav266/CureWrap-sub001/responses"
)

var categoryCollection *mongo.Collection = configs.GetCollection(configs.DB, "categories")

func GetCategories(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := categoryCollection.Find(ctx, bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching categories",
			Result:  nil,
		})
	}

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing categories",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Categories fetched successfully",
		Result:  &fiber.Map{"categories": categories},
	})
}

// Only for admin
func AddCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name  string `json:"name" validate:"required"`
		Image string `json:"image"`
	}

	if err := c.BodyParser(&reqBody); err != nil || reqBody.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Category name is required",
			Result:  nil,
		})
	}

	// Category names are unique; reject duplicates.
	var existing models.Category
	err := categoryCollection.FindOne(ctx, bson.M{"name": reqBody.Name}).Decode(&existing)
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Category already exists",
			Result:  nil,
		})
	} else if err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error checking category",
			Result:  nil,
		})
	}

	category := models.Category{
		Id:    primitive.NewObjectID(),
		Name:  reqBody.Name,
		Image: reqBody.Image,
	}

	if _, err := categoryCollection.InsertOne(ctx, category); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting category",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Category added successfully",
		Result:  &fiber.Map{"category": category},
	})
}
