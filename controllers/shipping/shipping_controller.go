package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/saurav266/CureWrap-sub001/configs"
	"github.com/saurav266/CureWrap-sub001/domain"
	"github.com/saurav266/CureWrap-sub001/repositories"
	"github.com/saurav266/CureWrap-sub001/responses"
)

var orderRepo repositories.OrderRepository = repositories.NewMongoOrderRepository(
	configs.GetCollection(configs.DB, "orders"))

// CarrierStatusUpdate is one event from the carrier's status feed.
type CarrierStatusUpdate struct {
	OrderID       string `json:"orderId" validate:"required"`
	RawStatusText string `json:"rawStatusText" validate:"required"`
}

// CarrierStatusWebhook applies a carrier status string to an order's
// delivery state. Strings that don't translate to an internal state
// are dropped without touching the order; that is not an error, the
// carrier just had nothing actionable to say.
func CarrierStatusWebhook(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var update CarrierStatusUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	orderObjectID, err := primitive.ObjectIDFromHex(update.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
			Result:  nil,
		})
	}

	state, ok := domain.TranslateCarrierStatus(update.RawStatusText)
	if !ok {
		log.WithFields(log.Fields{
			"orderId": update.OrderID,
			"status":  update.RawStatusText,
		}).Info("Carrier status not actionable, dropped")
		return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
			Status:  fiber.StatusOK,
			Message: "No actionable update",
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

	if err := order.ApplyDelivery(state, time.Now()); err != nil {
		return c.Status(fiber.StatusConflict).JSON(responses.UserResponse{
			Status:  fiber.StatusConflict,
			Message: err.Error(),
			Result:  nil,
		})
	}

	if err := orderRepo.UpdateDelivery(ctx, order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update delivery status",
			Result:  nil,
		})
	}

	log.WithFields(log.Fields{
		"orderId":        update.OrderID,
		"carrierStatus":  update.RawStatusText,
		"deliveryStatus": state,
	}).Info("Delivery status updated")

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Delivery status updated",
		Result: &fiber.Map{
			"orderId":        update.OrderID,
			"deliveryStatus": state,
		},
	})
}
