package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testOrder(items ...OrderItem) *Order {
	return &Order{
		ID:             primitive.NewObjectID(),
		UserID:         primitive.NewObjectID(),
		Items:          items,
		DeliveryStatus: DeliveryPending,
		CreatedAt:      time.Now(),
	}
}

func TestFindItem(t *testing.T) {
	first := OrderItem{ProductID: primitive.NewObjectID(), Name: "Canvas Sneaker", Size: "M", Quantity: 1}
	second := OrderItem{ProductID: primitive.NewObjectID(), Name: "Running Shoe", Size: "L", Quantity: 2}
	order := testOrder(first, second)

	item, found := order.FindItem(second.ProductID)
	require.True(t, found)
	assert.Equal(t, "Running Shoe", item.Name)

	_, found = order.FindItem(primitive.NewObjectID())
	assert.False(t, found)
}

func TestDaysSinceDelivery(t *testing.T) {
	order := testOrder()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	_, delivered := order.DaysSinceDelivery(now)
	assert.False(t, delivered, "undelivered order has no elapsed days")

	deliveredAt := now.Add(-3*24*time.Hour - 6*time.Hour)
	order.DeliveryStatus = DeliveryDelivered
	order.DeliveredAt = &deliveredAt

	days, delivered := order.DaysSinceDelivery(now)
	require.True(t, delivered)
	assert.Equal(t, 3, days, "partial days floor down")
}

func TestApplyDelivery(t *testing.T) {
	order := testOrder()
	now := time.Now()

	require.NoError(t, order.ApplyDelivery(DeliveryShipped, now))
	assert.Equal(t, DeliveryShipped, order.DeliveryStatus)
	assert.Nil(t, order.DeliveredAt)

	require.NoError(t, order.ApplyDelivery(DeliveryDelivered, now))
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, now, *order.DeliveredAt)

	// Moving off delivered clears the timestamp again.
	require.NoError(t, order.ApplyDelivery(DeliveryShipped, now))
	assert.Nil(t, order.DeliveredAt)
}

func TestApplyDeliveryCancelledIsTerminal(t *testing.T) {
	order := testOrder()
	now := time.Now()

	require.NoError(t, order.ApplyDelivery(DeliveryCancelled, now))

	err := order.ApplyDelivery(DeliveryShipped, now)
	assert.ErrorIs(t, err, ErrOrderCancelled)
	assert.Equal(t, DeliveryCancelled, order.DeliveryStatus)
}

func TestApplyDeliveryRejectsUnknownState(t *testing.T) {
	order := testOrder()
	err := order.ApplyDelivery(DeliveryStatus("teleported"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
