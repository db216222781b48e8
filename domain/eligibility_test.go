package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func deliveredOrder(daysAgo int, items ...OrderItem) *Order {
	order := testOrder(items...)
	deliveredAt := time.Now().Add(-time.Duration(daysAgo) * 24 * time.Hour)
	order.DeliveryStatus = DeliveryDelivered
	order.DeliveredAt = &deliveredAt
	return order
}

func TestResolveReturnPolicy(t *testing.T) {
	assert.Equal(t, 7, ResolveReturnPolicy(nil))
	assert.Equal(t, 7, ResolveReturnPolicy(&ReturnPolicy{Days: 0}))
	assert.Equal(t, 7, ResolveReturnPolicy(&ReturnPolicy{Days: -2}))
	assert.Equal(t, 30, ResolveReturnPolicy(&ReturnPolicy{Days: 30}))
}

func TestEvaluateReplacementItemNotFound(t *testing.T) {
	order := deliveredOrder(1, OrderItem{ProductID: primitive.NewObjectID(), Name: "Sneaker", Quantity: 1})

	_, err := EvaluateReplacement(order, ReplacementRequest{
		UserID:    order.UserID,
		ProductID: primitive.NewObjectID(),
		Reason:    "Damaged Product",
	}, nil, time.Now())

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestEvaluateReplacementNotYetDelivered(t *testing.T) {
	item := OrderItem{ProductID: primitive.NewObjectID(), Name: "Sneaker", Quantity: 1}
	order := testOrder(item)
	order.DeliveryStatus = DeliveryShipped

	_, err := EvaluateReplacement(order, ReplacementRequest{
		UserID:    order.UserID,
		ProductID: item.ProductID,
		Reason:    "Damaged Product",
	}, nil, time.Now())

	assert.ErrorIs(t, err, ErrNotYetDelivered)
}

// The boundary day itself is still eligible; one past it is not.
func TestEvaluateReplacementWindowBoundary(t *testing.T) {
	item := OrderItem{ProductID: primitive.NewObjectID(), Name: "Sneaker", Quantity: 1}

	rep, err := EvaluateReplacement(deliveredOrder(7, item), ReplacementRequest{
		UserID:    primitive.NewObjectID(),
		ProductID: item.ProductID,
		Reason:    "Damaged Product",
	}, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, ReplacementPending, rep.Status)

	_, err = EvaluateReplacement(deliveredOrder(8, item), ReplacementRequest{
		UserID:    primitive.NewObjectID(),
		ProductID: item.ProductID,
		Reason:    "Damaged Product",
	}, nil, time.Now())
	assert.ErrorIs(t, err, ErrWindowExpired)
}

func TestEvaluateReplacementExplicitPolicy(t *testing.T) {
	item := OrderItem{ProductID: primitive.NewObjectID(), Name: "Sneaker", Quantity: 1}
	policy := &ReturnPolicy{Days: 14}

	_, err := EvaluateReplacement(deliveredOrder(10, item), ReplacementRequest{
		UserID:    primitive.NewObjectID(),
		ProductID: item.ProductID,
		Reason:    "Wrong size delivered",
	}, policy, time.Now())
	assert.NoError(t, err)

	_, err = EvaluateReplacement(deliveredOrder(15, item), ReplacementRequest{
		UserID:    primitive.NewObjectID(),
		ProductID: item.ProductID,
		Reason:    "Wrong size delivered",
	}, policy, time.Now())
	assert.ErrorIs(t, err, ErrWindowExpired)
}

// A window snapshotted on the line item wins over the product policy.
func TestEvaluateReplacementSnapshottedWindow(t *testing.T) {
	item := OrderItem{ProductID: primitive.NewObjectID(), Name: "Sneaker", Quantity: 1, ReturnDays: 3}

	_, err := EvaluateReplacement(deliveredOrder(5, item), ReplacementRequest{
		UserID:    primitive.NewObjectID(),
		ProductID: item.ProductID,
		Reason:    "Damaged Product",
	}, &ReturnPolicy{Days: 30}, time.Now())

	assert.ErrorIs(t, err, ErrWindowExpired)
}

func TestEvaluateReplacementInvalidReason(t *testing.T) {
	item := OrderItem{ProductID: primitive.NewObjectID(), Name: "Sneaker", Quantity: 1}
	order := deliveredOrder(1, item)

	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := EvaluateReplacement(order, ReplacementRequest{
			UserID:    order.UserID,
			ProductID: item.ProductID,
			Reason:    reason,
		}, nil, time.Now())
		assert.ErrorIs(t, err, ErrInvalidReason, "reason %q", reason)
	}
}

// The snapshot is fixed at request time; later order mutations must
// not leak into it.
func TestReplacementSnapshotIndependence(t *testing.T) {
	item := OrderItem{ProductID: primitive.NewObjectID(), Name: "Canvas Sneaker", Size: "M", Color: "Black", Quantity: 2}
	order := deliveredOrder(2, item)

	rep, err := EvaluateReplacement(order, ReplacementRequest{
		UserID:    order.UserID,
		ProductID: item.ProductID,
		Reason:    "Sole came apart",
		Images:    []string{"https://cdn.example.com/evidence/1.jpg"},
	}, nil, time.Now())
	require.NoError(t, err)

	order.Items[0].Name = "Renamed Product"
	order.Items[0].Quantity = 99

	assert.Equal(t, "Canvas Sneaker", rep.Item.Name)
	assert.Equal(t, "M", rep.Item.Size)
	assert.Equal(t, "Black", rep.Item.Color)
	assert.Equal(t, 2, rep.Item.Quantity)
	assert.Equal(t, item.ProductID, rep.Item.ProductID)
}
