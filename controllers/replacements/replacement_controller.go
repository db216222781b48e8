package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saurav266/CureWrap-sub001/configs"
	"github.com/saurav266/CureWrap-sub001/domain"
	"github.com/saurav266/CureWrap-sub001/models"
	"github.com/saurav266/CureWrap-sub001/repositories"
	"github.com/saurav266/CureWrap-sub001/responses"
)

var productCollection = configs.GetCollection(configs.DB, "products")

var orderRepo repositories.OrderRepository = repositories.NewMongoOrderRepository(
	configs.GetCollection(configs.DB, "orders"))

var replacementRepo repositories.ReplacementRepository = repositories.NewMongoReplacementRepository(
	configs.GetCollection(configs.DB, "replacements"))

// RequestReplacementBody is the inbound create-replacement payload.
type RequestReplacementBody struct {
	OrderID   string   `json:"orderId" validate:"required"`
	ProductID string   `json:"productId" validate:"required"`
	Reason    string   `json:"reason" validate:"required"`
	Images    []string `json:"images"`
}

// RequestReplacement checks eligibility for the given order item and,
// when eligible, creates a pending replacement request.
func RequestReplacement(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
			Result:  nil,
		})
	}

	var reqBody RequestReplacementBody
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	orderObjectID, err := primitive.ObjectIDFromHex(reqBody.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
			Result:  nil,
		})
	}

	productObjectID, err := primitive.ObjectIDFromHex(reqBody.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
			Result:  nil,
		})
	}

	order, err := orderRepo.Load(ctx, orderObjectID)
	if errors.Is(err, domain.ErrOrderNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
			Result:  nil,
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch order",
			Result:  nil,
		})
	}

	// Orders are only visible to their owner.
	if order.UserID != userObjectID {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
			Result:  nil,
		})
	}

	// The return policy lives on the product; orders placed before
	// policy snapshotting fall back to it, then to the default.
	var policy *domain.ReturnPolicy
	var product models.Product
	err = productCollection.FindOne(ctx, bson.M{"_id": productObjectID}).Decode(&product)
	if err == nil {
		policy = product.ReturnPolicy
	} else if err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch product",
			Result:  nil,
		})
	}

	replacement, err := domain.EvaluateReplacement(order, domain.ReplacementRequest{
		UserID:    userObjectID,
		ProductID: productObjectID,
		Reason:    reqBody.Reason,
		Images:    reqBody.Images,
	}, policy, time.Now())
	if err != nil {
		return replacementError(c, err)
	}

	if err := replacementRepo.Save(ctx, replacement); err != nil {
		if errors.Is(err, domain.ErrActiveReplacementExists) {
			return c.Status(fiber.StatusConflict).JSON(responses.UserResponse{
				Status:  fiber.StatusConflict,
				Message: err.Error(),
				Result:  nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save replacement request",
			Result:  nil,
		})
	}

	log.WithFields(log.Fields{
		"replacementId": replacement.ID.Hex(),
		"orderId":       reqBody.OrderID,
		"productId":     reqBody.ProductID,
	}).Info("Replacement request created")

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Replacement request created",
		Result:  &fiber.Map{"replacement": replacement},
	})
}

// replacementError maps domain eligibility failures to HTTP statuses.
func replacementError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotYetDelivered),
		errors.Is(err, domain.ErrWindowExpired),
		errors.Is(err, domain.ErrInvalidReason):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(responses.UserResponse{
		Status:  status,
		Message: err.Error(),
		Result:  nil,
	})
}

// GetMyReplacements lists the requesting user's replacement requests,
// most recent first.
func GetMyReplacements(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
			Result:  nil,
		})
	}

	replacements, err := replacementRepo.FindByUser(ctx, userObjectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch replacement requests",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Replacement requests fetched",
		Result:  &fiber.Map{"replacements": replacements},
	})
}

// Only for admin
func GetAllReplacements(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	status := domain.ReplacementStatus(c.Query("status", ""))
	if status != "" && !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid status filter",
			Result:  nil,
		})
	}

	replacements, err := replacementRepo.List(ctx, status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch replacement requests",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Replacement requests fetched",
		Result:  &fiber.Map{"replacements": replacements},
	})
}

// UpdateReplacementBody is the admin transition payload.
type UpdateReplacementBody struct {
	ReplacementID string `json:"replacementId" validate:"required"`
	Status        string `json:"status" validate:"required"`
	Notes         string `json:"notes"`
}

// UpdateReplacementStatus moves a replacement request through the
// workflow. Only for admin.
func UpdateReplacementStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody UpdateReplacementBody
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	replacementObjectID, err := primitive.ObjectIDFromHex(reqBody.ReplacementID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid replacement ID format",
			Result:  nil,
		})
	}

	target := domain.ReplacementStatus(reqBody.Status)
	if !target.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Unknown replacement status: " + reqBody.Status,
			Result:  nil,
		})
	}

	replacement, err := replacementRepo.FindByID(ctx, replacementObjectID)
	if errors.Is(err, domain.ErrReplacementNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Replacement request not found",
			Result:  nil,
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch replacement request",
			Result:  nil,
		})
	}

	actor := domain.ActorLogistics
	switch target {
	case domain.ReplacementApproved, domain.ReplacementRejected, domain.ReplacementCompleted:
		actor = domain.ActorAdmin
	}

	if err := domain.Transition(replacement, target, actor, reqBody.Notes, time.Now()); err != nil {
		return c.Status(fiber.StatusConflict).JSON(responses.UserResponse{
			Status:  fiber.StatusConflict,
			Message: err.Error(),
			Result:  nil,
		})
	}

	if err := replacementRepo.UpdateStatus(ctx, replacement); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update replacement request",
			Result:  nil,
		})
	}

	log.WithFields(log.Fields{
		"replacementId": reqBody.ReplacementID,
		"status":        reqBody.Status,
	}).Info("Replacement request updated")

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Replacement request updated",
		Result:  &fiber.Map{"replacement": replacement},
	})
}
