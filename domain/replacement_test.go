package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func pendingReplacement() *Replacement {
	return &Replacement{
		ID:        primitive.NewObjectID(),
		OrderID:   primitive.NewObjectID(),
		UserID:    primitive.NewObjectID(),
		Item:      ReplacementItem{ProductID: primitive.NewObjectID(), Name: "Sneaker", Quantity: 1},
		Reason:    "Damaged Product",
		Status:    ReplacementPending,
		CreatedAt: time.Now(),
	}
}

func TestTransitionHappyPath(t *testing.T) {
	rep := pendingReplacement()
	now := time.Now()

	steps := []struct {
		target ReplacementStatus
		actor  Actor
	}{
		{ReplacementApproved, ActorAdmin},
		{ReplacementPickupScheduled, ActorLogistics},
		{ReplacementPicked, ActorLogistics},
		{ReplacementReshipped, ActorLogistics},
		{ReplacementCompleted, ActorAdmin},
	}

	for _, step := range steps {
		require.NoError(t, Transition(rep, step.target, step.actor, "", now))
		assert.Equal(t, step.target, rep.Status)
	}

	require.Len(t, rep.History, len(steps))
	assert.Equal(t, ReplacementPending, rep.History[0].From)
	assert.Equal(t, ReplacementCompleted, rep.History[len(steps)-1].To)
}

func TestTransitionNoSkippingStages(t *testing.T) {
	rep := pendingReplacement()

	err := Transition(rep, ReplacementPicked, ActorLogistics, "", time.Now())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, ReplacementPending, rep.Status)
	assert.Empty(t, rep.History, "failed transitions leave no trace")
}

func TestTransitionTerminalStates(t *testing.T) {
	now := time.Now()

	rejected := pendingReplacement()
	require.NoError(t, Transition(rejected, ReplacementRejected, ActorAdmin, "counterfeit claim", now))
	for _, target := range []ReplacementStatus{
		ReplacementPending, ReplacementApproved, ReplacementPickupScheduled,
		ReplacementPicked, ReplacementReshipped, ReplacementCompleted,
	} {
		err := Transition(rejected, target, ActorAdmin, "", now)
		assert.ErrorIs(t, err, ErrInvalidTransition, "rejected -> %s", target)
	}

	assert.True(t, ReplacementRejected.Terminal())
	assert.True(t, ReplacementCompleted.Terminal())
	assert.False(t, ReplacementPending.Terminal())
}

func TestTransitionNoMovingBackward(t *testing.T) {
	rep := pendingReplacement()
	now := time.Now()
	require.NoError(t, Transition(rep, ReplacementApproved, ActorAdmin, "", now))

	err := Transition(rep, ReplacementPending, ActorAdmin, "", now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionNotes(t *testing.T) {
	rep := pendingReplacement()
	now := time.Now()

	require.NoError(t, Transition(rep, ReplacementApproved, ActorAdmin, "approved after photo review", now))
	assert.Equal(t, "approved after photo review", rep.AdminNotes)

	// Transitions without notes leave the existing notes alone.
	require.NoError(t, Transition(rep, ReplacementPickupScheduled, ActorLogistics, "", now))
	assert.Equal(t, "approved after photo review", rep.AdminNotes)
}

func TestReplacementStatusValid(t *testing.T) {
	assert.True(t, ReplacementPending.Valid())
	assert.True(t, ReplacementReshipped.Valid())
	assert.False(t, ReplacementStatus("refunded").Valid())
	assert.False(t, ReplacementStatus("").Valid())
}

// Full scenario: delivered three days ago, no explicit policy, request
// succeeds, approval succeeds, completing straight after does not.
func TestReplacementEndToEnd(t *testing.T) {
	item := OrderItem{ProductID: primitive.NewObjectID(), Name: "Canvas Sneaker", Size: "L", Quantity: 1}
	order := deliveredOrder(3, item)
	now := time.Now()

	rep, err := EvaluateReplacement(order, ReplacementRequest{
		UserID:    order.UserID,
		ProductID: item.ProductID,
		Reason:    "Damaged Product",
		Images:    []string{},
	}, nil, now)
	require.NoError(t, err)
	assert.Equal(t, ReplacementPending, rep.Status)
	assert.Equal(t, "Canvas Sneaker", rep.Item.Name)
	assert.Equal(t, "L", rep.Item.Size)
	assert.Equal(t, order.ID, rep.OrderID)

	require.NoError(t, Transition(rep, ReplacementApproved, ActorAdmin, "", now))

	err = Transition(rep, ReplacementCompleted, ActorAdmin, "", now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, ReplacementApproved, rep.Status)
}

func TestActiveReplacementStatuses(t *testing.T) {
	active := ActiveReplacementStatuses()
	assert.ElementsMatch(t, []ReplacementStatus{
		ReplacementPending, ReplacementApproved,
		ReplacementPickupScheduled, ReplacementPicked,
	}, active)
	for _, s := range active {
		assert.False(t, s.Terminal())
	}
}
