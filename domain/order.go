package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryStatus enumerates the internal delivery states of an order.
type DeliveryStatus string

const (
	DeliveryPending        DeliveryStatus = "pending"
	DeliveryPacked         DeliveryStatus = "packed"
	DeliveryShipped        DeliveryStatus = "shipped"
	DeliveryOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryDelivered      DeliveryStatus = "delivered"
	DeliveryCancelled      DeliveryStatus = "cancelled"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryPending, DeliveryPacked, DeliveryShipped,
		DeliveryOutForDelivery, DeliveryDelivered, DeliveryCancelled:
		return true
	default:
		return false
	}
}

// OrderItem is a line item captured at checkout. ReturnDays snapshots
// the product's return policy so later product edits don't shift the
// window of an already-placed order.
type OrderItem struct {
	ProductID  primitive.ObjectID `json:"productId" bson:"productId"`
	Name       string             `json:"name" bson:"name"`
	Size       string             `json:"size,omitempty" bson:"size,omitempty"`
	Color      string             `json:"color,omitempty" bson:"color,omitempty"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	Price      float64            `json:"price" bson:"price"`
	Image      string             `json:"image,omitempty" bson:"image,omitempty"`
	ReturnDays int                `json:"returnDays,omitempty" bson:"returnDays,omitempty"`
}

// Order is a customer's purchase record.
type Order struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId"`
	AddressID      primitive.ObjectID `json:"addressId" bson:"addressId"`
	Items          []OrderItem        `json:"items" bson:"items"`
	TotalAmount    float64            `json:"totalAmount" bson:"totalAmount"`
	PaymentStatus  string             `json:"paymentStatus" bson:"paymentStatus"` // pending, completed, failed
	RazorpayID     string             `json:"razorpayId,omitempty" bson:"razorpayId,omitempty"`
	PaymentID      string             `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	DeliveryStatus DeliveryStatus     `json:"deliveryStatus" bson:"deliveryStatus"`
	DeliveredAt    *time.Time         `json:"deliveredAt,omitempty" bson:"deliveredAt,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// FindItem returns the first line item matching the product reference.
func (o *Order) FindItem(productID primitive.ObjectID) (OrderItem, bool) {
	for _, item := range o.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return OrderItem{}, false
}

// DaysSinceDelivery returns the whole number of days elapsed since
// delivery. The second return is false when the order has not been
// delivered yet.
func (o *Order) DaysSinceDelivery(now time.Time) (int, bool) {
	if o.DeliveredAt == nil {
		return 0, false
	}
	days := int(now.Sub(*o.DeliveredAt).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days, true
}

// ApplyDelivery moves the order to a new delivery state. Cancelled is
// terminal, and DeliveredAt is set exactly when the state is
// delivered and cleared otherwise.
func (o *Order) ApplyDelivery(state DeliveryStatus, now time.Time) error {
	if !state.Valid() {
		return ErrInvalidTransition
	}
	if o.DeliveryStatus == DeliveryCancelled {
		return ErrOrderCancelled
	}
	o.DeliveryStatus = state
	if state == DeliveryDelivered {
		t := now
		o.DeliveredAt = &t
	} else {
		o.DeliveredAt = nil
	}
	o.UpdatedAt = now
	return nil
}
