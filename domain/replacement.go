package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReplacementStatus enumerates the states of a replacement request.
type ReplacementStatus string

const (
	ReplacementPending         ReplacementStatus = "pending"
	ReplacementApproved        ReplacementStatus = "approved"
	ReplacementRejected        ReplacementStatus = "rejected"
	ReplacementPickupScheduled ReplacementStatus = "pickup_scheduled"
	ReplacementPicked          ReplacementStatus = "picked"
	ReplacementReshipped       ReplacementStatus = "reshipped"
	ReplacementCompleted       ReplacementStatus = "completed"
)

func (s ReplacementStatus) Valid() bool {
	_, ok := replacementTransitions[s]
	return ok
}

// Terminal reports whether the state has no outgoing transitions.
func (s ReplacementStatus) Terminal() bool {
	next, ok := replacementTransitions[s]
	return ok && len(next) == 0
}

// Actor identifies who triggers a workflow transition.
type Actor string

const (
	ActorAdmin     Actor = "admin"
	ActorLogistics Actor = "logistics"
)

// ReplacementItem is the immutable snapshot of the requested line
// item, captured when the request is created.
type ReplacementItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	Size      string             `json:"size,omitempty" bson:"size,omitempty"`
	Color     string             `json:"color,omitempty" bson:"color,omitempty"`
	Quantity  int                `json:"quantity" bson:"quantity"`
}

// TransitionRecord is one entry of the workflow audit trail.
type TransitionRecord struct {
	From  ReplacementStatus `json:"from" bson:"from"`
	To    ReplacementStatus `json:"to" bson:"to"`
	Actor Actor             `json:"actor" bson:"actor"`
	At    time.Time         `json:"at" bson:"at"`
}

// Replacement is a request to exchange a delivered item.
type Replacement struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	OrderID    primitive.ObjectID `json:"orderId" bson:"orderId"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId"`
	Item       ReplacementItem    `json:"item" bson:"item"`
	Reason     string             `json:"reason" bson:"reason"`
	Images     []string           `json:"images" bson:"images"`
	Status     ReplacementStatus  `json:"status" bson:"status"`
	AdminNotes string             `json:"adminNotes,omitempty" bson:"adminNotes,omitempty"`
	History    []TransitionRecord `json:"history,omitempty" bson:"history,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// replacementTransitions is the workflow graph. Rejected and
// completed are terminal.
var replacementTransitions = map[ReplacementStatus][]ReplacementStatus{
	ReplacementPending:         {ReplacementApproved, ReplacementRejected},
	ReplacementApproved:        {ReplacementPickupScheduled},
	ReplacementPickupScheduled: {ReplacementPicked},
	ReplacementPicked:          {ReplacementReshipped},
	ReplacementReshipped:       {ReplacementCompleted},
	ReplacementRejected:        {},
	ReplacementCompleted:       {},
}

// ActiveReplacementStatuses are the states that count toward the
// one-active-request-per-item constraint enforced by storage.
func ActiveReplacementStatuses() []ReplacementStatus {
	return []ReplacementStatus{
		ReplacementPending,
		ReplacementApproved,
		ReplacementPickupScheduled,
		ReplacementPicked,
	}
}

// Transition moves the replacement to target if target is a direct
// successor of the current state. No skipping stages, no moving
// backward, no leaving a terminal state. Notes, when supplied, are
// stored as administrator notes, and every applied transition is
// appended to the audit history.
func Transition(rep *Replacement, target ReplacementStatus, actor Actor, notes string, now time.Time) error {
	allowed := false
	for _, next := range replacementTransitions[rep.Status] {
		if next == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrInvalidTransition
	}

	rep.History = append(rep.History, TransitionRecord{
		From:  rep.Status,
		To:    target,
		Actor: actor,
		At:    now,
	})
	rep.Status = target
	if notes != "" {
		rep.AdminNotes = notes
	}
	return nil
}
