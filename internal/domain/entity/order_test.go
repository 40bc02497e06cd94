package entity

import (
	"testing"
	"time"

	domainerrors "mesa/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusRejected,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusReported,
}

func TestOrderStatus_TransitionTable(t *testing.T) {
	allowed := map[OrderStatus]map[OrderStatus]bool{
		OrderStatusPending:   {OrderStatusAccepted: true, OrderStatusRejected: true, OrderStatusCancelled: true},
		OrderStatusAccepted:  {OrderStatusConfirmed: true, OrderStatusCancelled: true, OrderStatusReported: true},
		OrderStatusConfirmed: {OrderStatusPreparing: true, OrderStatusCancelled: true, OrderStatusReported: true},
		OrderStatusPreparing: {OrderStatusReady: true, OrderStatusCancelled: true, OrderStatusReported: true},
		OrderStatusReady:     {OrderStatusDelivered: true, OrderStatusReported: true},
		OrderStatusDelivered: {OrderStatusReported: true},
		OrderStatusRejected:  {},
		OrderStatusCancelled: {},
		OrderStatusReported:  {},
	}

	// Check every (state, target) pair, not just the allowed ones.
	for _, from := range allOrderStatuses {
		for _, to := range allOrderStatuses {
			assert.Equal(t, allowed[from][to], from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestOrderStatus_PendingCannotSkipToConfirmed(t *testing.T) {
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
}

func TestOrderStatus_TerminalStatesHaveNoExits(t *testing.T) {
	terminal := []OrderStatus{OrderStatusRejected, OrderStatusCancelled, OrderStatusReported}
	for _, status := range terminal {
		assert.True(t, status.IsTerminal(), "%s should be terminal", status)
		assert.Empty(t, status.ValidNextStates(), "%s should have no next states", status)
	}

	nonTerminal := []OrderStatus{
		OrderStatusPending, OrderStatusAccepted, OrderStatusConfirmed,
		OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered,
	}
	for _, status := range nonTerminal {
		assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
	}
}

func TestNewOrder_ComputesTotalFromItems(t *testing.T) {
	now := time.Now()
	items := []OrderItem{
		{ProductID: uuid.New(), Name: "Noodles", Quantity: 2, UnitPriceCents: 1500},
		{ProductID: uuid.New(), Name: "Tea", Quantity: 3, UnitPriceCents: 400},
	}

	order := NewOrder(uuid.New(), uuid.New(), "key-1", items, now)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, int64(2*1500+3*400), order.TotalCents)
	assert.Equal(t, "key-1", order.IdempotencyKey)
	assert.Equal(t, now, order.CreatedAt)
}

func TestOrder_HappyPathToDelivered(t *testing.T) {
	now := time.Now()
	order := NewOrder(uuid.New(), uuid.New(), "key-1", nil, now)

	order, err := order.Accept(now)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusAccepted, order.Status)

	order, err = order.Confirm(now)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusConfirmed, order.Status)

	order, err = order.StartPreparing(now)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPreparing, order.Status)

	order, err = order.MarkReady(now)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusReady, order.Status)

	order, err = order.MarkDelivered(now)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusDelivered, order.Status)
}

func TestOrder_Reject_RequiresReason(t *testing.T) {
	now := time.Now()
	order := NewOrder(uuid.New(), uuid.New(), "key-1", nil, now)

	_, err := order.Reject("", now)
	assert.ErrorIs(t, err, domainerrors.ErrMissingReason)

	_, err = order.Reject("   ", now)
	assert.ErrorIs(t, err, domainerrors.ErrMissingReason)

	rejected, err := order.Reject("out of stock", now)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusRejected, rejected.Status)
	assert.Equal(t, "out of stock", rejected.RejectionReason)
}

func TestOrder_Report_RequiresReason(t *testing.T) {
	now := time.Now()
	order := NewOrder(uuid.New(), uuid.New(), "key-1", nil, now)
	order, err := order.Accept(now)
	require.NoError(t, err)

	_, err = order.Report("   ", now)
	assert.ErrorIs(t, err, domainerrors.ErrMissingReason)

	reported, err := order.Report("wrong item", now)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusReported, reported.Status)
	assert.Equal(t, "wrong item", reported.ReportReason)
}

func TestOrder_Cancel_ReasonIsOptional(t *testing.T) {
	now := time.Now()
	order := NewOrder(uuid.New(), uuid.New(), "key-1", nil, now)

	cancelled, err := order.Cancel("", now)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCancelled, cancelled.Status)
	assert.Empty(t, cancelled.CancellationReason)
}

func TestOrder_Cancel_NotAllowedOnceReady(t *testing.T) {
	now := time.Now()
	order := NewOrder(uuid.New(), uuid.New(), "key-1", nil, now)
	order, _ = order.Accept(now)
	order, _ = order.Confirm(now)
	order, _ = order.StartPreparing(now)
	order, _ = order.MarkReady(now)

	_, err := order.Cancel("changed my mind", now)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrder_Report_AllowedAfterDelivery(t *testing.T) {
	now := time.Now()
	order := NewOrder(uuid.New(), uuid.New(), "key-1", nil, now)
	order, _ = order.Accept(now)
	order, _ = order.Confirm(now)
	order, _ = order.StartPreparing(now)
	order, _ = order.MarkReady(now)
	order, _ = order.MarkDelivered(now)

	reported, err := order.Report("food was cold", now)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusReported, reported.Status)
}

func TestOrder_Report_NotAllowedFromPending(t *testing.T) {
	now := time.Now()
	order := NewOrder(uuid.New(), uuid.New(), "key-1", nil, now)

	_, err := order.Report("too slow", now)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrder_TransitionFromTerminalStateFails(t *testing.T) {
	now := time.Now()
	order := NewOrder(uuid.New(), uuid.New(), "key-1", nil, now)
	cancelled, err := order.Cancel("", now)
	require.NoError(t, err)

	_, err = cancelled.Accept(now)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	_, err = cancelled.Report("reason", now)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrder_RetriedTerminalActionShortCircuits(t *testing.T) {
	now := time.Now()
	order := NewOrder(uuid.New(), uuid.New(), "key-1", nil, now)

	cancelled, err := order.Cancel("changed my mind", now)
	require.NoError(t, err)

	// A second cancel is a no-op success, original reason intact.
	again, err := cancelled.Cancel("different reason", now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, cancelled, again)
	assert.Equal(t, "changed my mind", again.CancellationReason)

	rejected, err := order.Reject("out of stock", now)
	require.NoError(t, err)

	// The short circuit applies before reason validation.
	again, err = rejected.Reject("", now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, rejected, again)
	assert.Equal(t, "out of stock", again.RejectionReason)

	accepted, err := order.Accept(now)
	require.NoError(t, err)
	reported, err := accepted.Report("wrong item", now)
	require.NoError(t, err)

	again, err = reported.Report("wrong item", now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, reported, again)
}

func TestOrder_RepeatedNonTerminalTransitionStillConflicts(t *testing.T) {
	now := time.Now()
	order := NewOrder(uuid.New(), uuid.New(), "key-1", nil, now)
	accepted, err := order.Accept(now)
	require.NoError(t, err)

	_, err = accepted.Accept(now)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrder_FailedTransitionLeavesOrderUnchanged(t *testing.T) {
	now := time.Now()
	order := NewOrder(uuid.New(), uuid.New(), "key-1", nil, now)

	unchanged, err := order.Confirm(now)
	assert.Error(t, err)
	assert.Equal(t, OrderStatusPending, unchanged.Status)
}
