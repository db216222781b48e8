package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultReturnWindowDays applies when a product carries no explicit
// return policy.
const DefaultReturnWindowDays = 7

// ReturnPolicy is a product attribute controlling how long after
// delivery a replacement may be requested.
type ReturnPolicy struct {
	Days int `json:"days" bson:"days"`
}

// ResolveReturnPolicy returns the allowed replacement window in days,
// falling back to the default when no usable policy is present.
func ResolveReturnPolicy(p *ReturnPolicy) int {
	if p != nil && p.Days > 0 {
		return p.Days
	}
	return DefaultReturnWindowDays
}

// ReplacementRequest carries the caller-supplied fields of a
// create-replacement request.
type ReplacementRequest struct {
	UserID    primitive.ObjectID
	ProductID primitive.ObjectID
	Reason    string
	Images    []string
}

// EvaluateReplacement decides whether a replacement request may be
// created for an order, and on success constructs the initial pending
// Replacement with an immutable snapshot of the requested item. The
// caller persists the result; this function has no side effects.
//
// The allowed window is the line item's snapshotted return days when
// present, otherwise the supplied product policy, otherwise the
// default. The boundary day itself is still eligible.
func EvaluateReplacement(order *Order, req ReplacementRequest, policy *ReturnPolicy, now time.Time) (*Replacement, error) {
	item, found := order.FindItem(req.ProductID)
	if !found {
		return nil, ErrItemNotFound
	}

	days, delivered := order.DaysSinceDelivery(now)
	if !delivered {
		return nil, ErrNotYetDelivered
	}

	allowed := item.ReturnDays
	if allowed <= 0 {
		allowed = ResolveReturnPolicy(policy)
	}
	if days > allowed {
		return nil, ErrWindowExpired
	}

	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrInvalidReason
	}

	images := make([]string, len(req.Images))
	copy(images, req.Images)

	return &Replacement{
		ID:      primitive.NewObjectID(),
		OrderID: order.ID,
		UserID:  req.UserID,
		Item: ReplacementItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
		},
		Reason:    req.Reason,
		Images:    images,
		Status:    ReplacementPending,
		CreatedAt: now,
	}, nil
}
