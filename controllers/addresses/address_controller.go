package addressController

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

var addressCollection *mongo.Collection = configs.GetCollection(configs.DB, "addresses")

func AddAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		StreetAddress string `json:"streetAddress" validate:"required"`
		City          string `json:"city" validate:"required"`
		State         string `json:"state" validate:"required"`
		ZipCode       string `json:"zipCode" validate:"required"`
		Phone         string `json:"phone"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	userId := c.Locals("userId").(string)
	userObjId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID",
			Result:  nil,
		})
	}

	newAddress := models.Address{
		Id:            primitive.NewObjectID(),
		UserId:        userObjId,
		StreetAddress: reqBody.StreetAddress,
		City:          reqBody.City,
		State:         reqBody.State,
		ZipCode:       reqBody.ZipCode,
		Phone:         reqBody.Phone,
	}

	_, err = addressCollection.InsertOne(ctx, newAddress)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error adding address",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Address added successfully",
		Result:  &fiber.Map{"address": newAddress},
	})
}

func GetAddresses(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId := c.Locals("userId").(string)
	userObjId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID",
			Result:  nil,
		})
	}

	cursor, err := addressCollection.Find(ctx, bson.M{"userId": userObjId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching addresses",
			Result:  nil,
		})
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing addresses",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Addresses fetched successfully",
		Result:  &fiber.Map{"addresses": addresses},
	})
}

func EditAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Id            string `json:"id" validate:"required"`
		StreetAddress string `json:"streetAddress" validate:"required"`
		City          string `json:"city" validate:"required"`
		State         string `json:"state" validate:"required"`
		ZipCode       string `json:"zipCode" validate:"required"`
		Phone         string `json:"phone"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	userId := c.Locals("userId").(string)
	userObjId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID",
			Result:  nil,
		})
	}

	addressObjId, err := primitive.ObjectIDFromHex(reqBody.Id)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address ID",
			Result:  nil,
		})
	}

	update := bson.M{"$set": bson.M{
		"streetAddress": reqBody.StreetAddress,
		"city":          reqBody.City,
		"state":         reqBody.State,
		"zipCode":       reqBody.ZipCode,
		"phone":         reqBody.Phone,
	}}

	result, err := addressCollection.UpdateOne(ctx, bson.M{"_id": addressObjId, "userId": userObjId}, update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating address",
			Result:  nil,
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Address not found or doesn't belong to user",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Address updated successfully",
		Result:  nil,
	})
}

func DeleteAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	addressId := c.Query("id")
	if addressId == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Address ID is required",
			Result:  nil,
		})
	}

	addressObjId, err := primitive.ObjectIDFromHex(addressId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address ID",
			Result:  nil,
		})
	}

	userId := c.Locals("userId").(string)
	userObjId, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID",
			Result:  nil,
		})
	}

	result, err := addressCollection.DeleteOne(ctx, bson.M{"_id": addressObjId, "userId": userObjId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting address",
			Result:  nil,
		})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Address not found or doesn't belong to user",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Address deleted successfully",
		Result:  nil,
	})
}
