package cartController

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

var userCollection = configs.GetCollection(configs.DB, "users")

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

type AddToCartRequest struct {
	ProductID string `json:"id" validate:"required"`
	Region    string `json:"region" validate:"required,oneof=EU US UK"`
	Size      int    `json:"size" validate:"required"`
}

// Regional shoe sizes map onto internal size categories.
var sizeMap = map[string]map[int]string{
	"EU": {38: "S", 39: "M", 40: "L", 41: "XL", 42: "XXL", 43: "XXXL"},
	"US": {5: "S", 6: "M", 7: "L", 8: "XL", 9: "XXL", 10: "XXXL"},
	"UK": {4: "S", 5: "M", 6: "L", 7: "XL", 8: "XXL", 9: "XXXL"},
}

func currentUser(c *fiber.Ctx, ctx context.Context) (*models.User, primitive.ObjectID, error) {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return nil, primitive.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in token")
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, primitive.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, "Invalid User ID format")
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return nil, primitive.NilObjectID, fiber.NewError(fiber.StatusInternalServerError, "User not found")
	}
	return &user, userObjectID, nil
}

func respondError(c *fiber.Ctx, err error) error {
	fe, ok := err.(*fiber.Error)
	if !ok {
		fe = fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fe.Code).JSON(responses.UserResponse{
		Status:  fe.Code,
		Message: fe.Message,
		Result:  nil,
	})
}

func saveCart(ctx context.Context, userID primitive.ObjectID, cart []models.CartItem) error {
	_, err := userCollection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"cart": cart}})
	return err
}

func AddtoCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request AddToCartRequest
	if err := c.BodyParser(&request); err != nil {
		return respondError(c, fiber.NewError(fiber.StatusBadRequest, "Invalid request"))
	}

	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return respondError(c, fiber.NewError(fiber.StatusBadRequest, "Invalid product Id"))
	}

	sizeCategory, valid := sizeMap[request.Region][request.Size]
	if !valid {
		return respondError(c, fiber.NewError(fiber.StatusBadRequest, "Invalid size and region"))
	}

	var product models.Product
	if err := productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, fiber.NewError(fiber.StatusNotFound, "Product not found"))
		}
		return respondError(c, fiber.NewError(fiber.StatusInternalServerError, "Error fetching product details"))
	}

	user, userObjectID, err := currentUser(c, ctx)
	if err != nil {
		return respondError(c, err)
	}

	// Same product and size already in the cart bumps the quantity.
	found := false
	for i, cartItem := range user.Cart {
		if cartItem.Product.ID == productID && cartItem.Product.Size == sizeCategory {
			user.Cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		product.InCart = true
		product.Size = sizeCategory
		user.Cart = append(user.Cart, models.CartItem{Product: product, Quantity: 1})
	}

	if err := saveCart(ctx, userObjectID, user.Cart); err != nil {
		return respondError(c, fiber.NewError(fiber.StatusInternalServerError, "Error updating cart"))
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product added to cart",
		Result:  &fiber.Map{"cart": user.Cart},
	})
}

type cartItemRequest struct {
	ProductID string `json:"id" validate:"required"`
	Size      string `json:"size"`
}

func RemoveFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request cartItemRequest
	if err := c.BodyParser(&request); err != nil {
		return respondError(c, fiber.NewError(fiber.StatusBadRequest, "Invalid request"))
	}

	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return respondError(c, fiber.NewError(fiber.StatusBadRequest, "Invalid product Id"))
	}

	user, userObjectID, err := currentUser(c, ctx)
	if err != nil {
		return respondError(c, err)
	}

	updated := user.Cart[:0]
	for _, cartItem := range user.Cart {
		if cartItem.Product.ID == productID && (request.Size == "" || cartItem.Product.Size == request.Size) {
			continue
		}
		updated = append(updated, cartItem)
	}

	if err := saveCart(ctx, userObjectID, updated); err != nil {
		return respondError(c, fiber.NewError(fiber.StatusInternalServerError, "Error updating cart"))
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product removed from cart",
		Result:  &fiber.Map{"cart": updated},
	})
}

func DecrementFromCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var request cartItemRequest
	if err := c.BodyParser(&request); err != nil {
		return respondError(c, fiber.NewError(fiber.StatusBadRequest, "Invalid request"))
	}

	productID, err := primitive.ObjectIDFromHex(request.ProductID)
	if err != nil {
		return respondError(c, fiber.NewError(fiber.StatusBadRequest, "Invalid product Id"))
	}

	user, userObjectID, err := currentUser(c, ctx)
	if err != nil {
		return respondError(c, err)
	}

	updated := user.Cart[:0]
	for _, cartItem := range user.Cart {
		if cartItem.Product.ID == productID && (request.Size == "" || cartItem.Product.Size == request.Size) {
			cartItem.Quantity--
			if cartItem.Quantity <= 0 {
				continue
			}
		}
		updated = append(updated, cartItem)
	}

	if err := saveCart(ctx, userObjectID, updated); err != nil {
		return respondError(c, fiber.NewError(fiber.StatusInternalServerError, "Error updating cart"))
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Cart updated",
		Result:  &fiber.Map{"cart": updated},
	})
}

func GetAllCarts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, _, err := currentUser(c, ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Cart fetched successfully",
		Result:  &fiber.Map{"cart": user.Cart},
	})
}

func GetCartTotals(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, _, err := currentUser(c, ctx)
	if err != nil {
		return respondError(c, err)
	}

	var total float64
	var count int
	for _, cartItem := range user.Cart {
		total += cartItem.Product.Price * float64(cartItem.Quantity)
		count += cartItem.Quantity
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Cart totals fetched successfully",
		Result: &fiber.Map{
			"total":     total,
			"itemCount": count,
		},
	})
}
