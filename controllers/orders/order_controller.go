package controllers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/razorpay/razorpay-go"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saurav266/CureWrap-sub001/configs"
	"github.com/saurav266/CureWrap-sub001/domain"
	"github.com/saurav266/CureWrap-sub001/models"
	"github.com/saurav266/CureWrap-sub001/repositories"
	"github.com/saurav266/CureWrap-sub001/responses"
)

var orderCollection = configs.GetCollection(configs.DB, "orders")
var userCollection = configs.GetCollection(configs.DB, "users")
var addressCollection = configs.GetCollection(configs.DB, "addresses")

var orderRepo repositories.OrderRepository = repositories.NewMongoOrderRepository(orderCollection)

// CreateOrderRequest holds the data required to create an order
type CreateOrderRequest struct {
	AddressID string  `json:"addressId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// VerifyPaymentRequest holds the data for payment verification
type VerifyPaymentRequest struct {
	OrderID    string `json:"orderId"`
	PaymentID  string `json:"paymentId"`
	Signature  string `json:"signature"`
	RazorpayID string `json:"razorpayId"`
}

func CreateOrder(c *fiber.Ctx) error {
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

	var orderReq CreateOrderRequest
	if err := c.BodyParser(&orderReq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
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

	addressObjectID, err := primitive.ObjectIDFromHex(orderReq.AddressID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address ID format",
			Result:  nil,
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user details",
			Result:  nil,
		})
	}

	if len(user.Cart) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Cart is empty",
			Result:  nil,
		})
	}

	var address models.Address
	if err := addressCollection.FindOne(ctx, bson.M{
		"_id":    addressObjectID,
		"userId": userObjectID,
	}).Decode(&address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Address not found or doesn't belong to user",
			Result:  nil,
		})
	}

	// Snapshot cart items as order line items. The return window is
	// captured here so later product edits don't change it.
	var orderItems []domain.OrderItem
	for _, cartItem := range user.Cart {
		item := domain.OrderItem{
			ProductID: cartItem.Product.ID,
			Name:      cartItem.Product.Name,
			Size:      cartItem.Product.Size,
			Color:     cartItem.Product.Color,
			Quantity:  cartItem.Quantity,
			Price:     cartItem.Product.Price,
		}
		if len(cartItem.Product.Images) > 0 {
			item.Image = cartItem.Product.Images[0]
		}
		if cartItem.Product.ReturnPolicy != nil {
			item.ReturnDays = cartItem.Product.ReturnPolicy.Days
		}
		orderItems = append(orderItems, item)
	}

	client := razorpay.NewClient(configs.EnvRazorpayKeyId(), configs.EnvRazorpayKeySecret())

	// Razorpay amounts are in the smallest currency unit.
	orderAmount := int64(orderReq.Amount * 100)
	currency := "INR"
	if orderReq.Currency != "" {
		currency = orderReq.Currency
	}

	data := map[string]interface{}{
		"amount":   orderAmount,
		"currency": currency,
		"receipt":  "receipt_" + primitive.NewObjectID().Hex(),
	}

	razorpayOrder, err := client.Order.Create(data, nil)
	if err != nil {
		log.WithError(err).Error("Razorpay order creation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create Razorpay order: " + err.Error(),
			Result:  nil,
		})
	}

	now := time.Now()
	order := domain.Order{
		ID:             primitive.NewObjectID(),
		UserID:         userObjectID,
		AddressID:      addressObjectID,
		Items:          orderItems,
		TotalAmount:    orderReq.Amount,
		PaymentStatus:  "pending",
		RazorpayID:     razorpayOrder["id"].(string),
		DeliveryStatus: domain.DeliveryPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := orderRepo.Save(ctx, &order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create order in database",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Order created successfully",
		Result: &fiber.Map{
			"orderId":    order.ID.Hex(),
			"razorpayId": razorpayOrder["id"],
			"amount":     razorpayOrder["amount"],
			"currency":   razorpayOrder["currency"],
			"key_id":     configs.EnvRazorpayKeyId(),
		},
	})
}

// VerifyPayment verifies the payment signature from Razorpay and updates order status
func VerifyPayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
			Result:  nil,
		})
	}

	var verifyReq VerifyPaymentRequest
	if err := c.BodyParser(&verifyReq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Result:  nil,
		})
	}

	// HMAC SHA256 over "<razorpayOrderId>|<paymentId>".
	data := verifyReq.RazorpayID + "|" + verifyReq.PaymentID
	h := hmac.New(sha256.New, []byte(configs.EnvRazorpayKeySecret()))
	h.Write([]byte(data))
	expectedSignature := hex.EncodeToString(h.Sum(nil))

	if verifyReq.Signature != expectedSignature {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid payment signature",
			Result:  nil,
		})
	}

	orderObjectID, err := primitive.ObjectIDFromHex(verifyReq.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
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

	update := bson.M{
		"$set": bson.M{
			"paymentStatus": "completed",
			"paymentId":     verifyReq.PaymentID,
			"updatedAt":     time.Now(),
		},
	}

	result, err := orderCollection.UpdateOne(
		ctx,
		bson.M{"_id": orderObjectID, "userId": userObjectID},
		update,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update order: " + err.Error(),
			Result:  nil,
		})
	}

	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found or doesn't belong to user",
			Result:  nil,
		})
	}

	// Clear the cart after successful payment. Failure here is logged
	// but doesn't fail the request; the payment already went through.
	_, err = userCollection.UpdateOne(
		ctx,
		bson.M{"_id": userObjectID},
		bson.M{"$set": bson.M{"cart": []interface{}{}}},
	)
	if err != nil {
		log.WithError(err).WithField("orderId", verifyReq.OrderID).Warn("Failed to clear cart after payment")
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Payment verified successfully",
		Result: &fiber.Map{
			"orderId":    verifyReq.OrderID,
			"paymentId":  verifyReq.PaymentID,
			"razorpayId": verifyReq.RazorpayID,
		},
	})
}

func GetOrders(c *fiber.Ctx) error {
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

	pageStr := c.Query("page", "1")
	limitStr := c.Query("limit", "10")
	status := c.Query("status", "")

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil {
		page = 1
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil {
		limit = 10
	}

	skip := (page - 1) * limit

	filter := bson.M{"userId": userObjectID}
	if status != "" {
		filter["deliveryStatus"] = status
	}

	totalOrders, err := orderCollection.CountDocuments(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to count orders",
			Result:  nil,
		})
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := orderCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch orders",
			Result:  nil,
		})
	}
	defer cursor.Close(ctx)

	var orders []fiber.Map
	for cursor.Next(ctx) {
		var order domain.Order
		if err := cursor.Decode(&order); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to decode order",
				Result:  nil,
			})
		}

		var simplifiedItems []fiber.Map
		for _, item := range order.Items {
			simplifiedItems = append(simplifiedItems, fiber.Map{
				"productId": item.ProductID.Hex(),
				"name":      item.Name,
				"price":     item.Price,
				"size":      item.Size,
				"color":     item.Color,
				"quantity":  item.Quantity,
				"image":     item.Image,
			})
		}

		orders = append(orders, fiber.Map{
			"id":             order.ID.Hex(),
			"items":          simplifiedItems,
			"deliveryStatus": order.DeliveryStatus,
			"deliveredAt":    order.DeliveredAt,
			"paymentStatus":  order.PaymentStatus,
			"total":          order.TotalAmount,
			"createdAt":      order.CreatedAt,
		})
	}

	if err := cursor.Err(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Cursor error",
			Result:  nil,
		})
	}

	totalPages := (totalOrders + limit - 1) / limit

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Result: &fiber.Map{
			"orders":      orders,
			"currentPage": page,
			"totalPages":  totalPages,
			"totalOrders": totalOrders,
		},
	})
}

func GetOrderById(c *fiber.Ctx) error {
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

	orderId := c.Query("id")
	if orderId == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order ID is required",
			Result:  nil,
		})
	}

	orderObjectID, err := primitive.ObjectIDFromHex(orderId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
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

	order, err := orderRepo.Load(ctx, orderObjectID)
	if err == domain.ErrOrderNotFound {
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

	if order.UserID != userObjectID {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Order fetched successfully",
		Result:  &fiber.Map{"order": order},
	})
}
