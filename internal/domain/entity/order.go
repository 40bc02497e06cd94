// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"strings"
	"time"

	domainerrors "mesa/internal/domain/errors"

	"github.com/google/uuid"
)

// OrderStatus represents the state of an order in its lifecycle.
type OrderStatus string

const (
	// OrderStatusPending is the sole initial state: placed, awaiting restaurant review.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusAccepted indicates the restaurant acknowledged the order.
	OrderStatusAccepted OrderStatus = "ACCEPTED"
	// OrderStatusRejected is terminal: the restaurant declined the order.
	OrderStatusRejected OrderStatus = "REJECTED"
	// OrderStatusConfirmed indicates the restaurant committed kitchen resources.
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	// OrderStatusPreparing indicates the kitchen started preparing.
	OrderStatusPreparing OrderStatus = "PREPARING"
	// OrderStatusReady indicates the order is ready for handoff.
	OrderStatusReady OrderStatus = "READY"
	// OrderStatusDelivered indicates the order reached the customer.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled is terminal: the order was cancelled mid-flight.
	OrderStatusCancelled OrderStatus = "CANCELLED"
	// OrderStatusReported is terminal: a problem was reported against the order.
	OrderStatusReported OrderStatus = "REPORTED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// orderTransitions is the full transition table, kept as data so the
// "every (state, action) pair" property is mechanically checkable.
// PENDING cannot jump straight to CONFIRMED: the restaurant must accept first.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusAccepted, OrderStatusRejected, OrderStatusCancelled},
	OrderStatusAccepted:  {OrderStatusConfirmed, OrderStatusCancelled, OrderStatusReported},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled, OrderStatusReported},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled, OrderStatusReported},
	OrderStatusReady:     {OrderStatusDelivered, OrderStatusReported},
	OrderStatusDelivered: {OrderStatusReported},
	OrderStatusRejected:  {},
	OrderStatusCancelled: {},
	OrderStatusReported:  {},
}

// ValidNextStates returns the allowed target states from the given status.
func (s OrderStatus) ValidNextStates() []OrderStatus {
	targets := orderTransitions[s]
	out := make([]OrderStatus, len(targets))
	copy(out, targets)

	return out
}

// CanTransitionTo reports whether the transition table allows moving to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// OrderItem is an immutable snapshot of one line on an order.
// Quantity and unit price are captured at creation time and never recalculated.
type OrderItem struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

// SubtotalCents returns quantity × unit price for this line.
func (i OrderItem) SubtotalCents() int64 {
	return int64(i.Quantity) * i.UnitPriceCents
}

// Order represents a customer order against a restaurant.
// Every transition returns a new logical copy; persistence updates in place by id.
type Order struct {
	ID                 uuid.UUID   `json:"id"`
	CustomerID         uuid.UUID   `json:"customer_id"`
	RestaurantID       uuid.UUID   `json:"restaurant_id"`
	IdempotencyKey     string      `json:"idempotency_key"` // Client-supplied unique key for safe retries.
	Status             OrderStatus `json:"status"`
	Items              []OrderItem `json:"items"`
	TotalCents         int64       `json:"total_cents"` // Computed once at creation, never recalculated.
	RejectionReason    string      `json:"rejection_reason,omitempty"`
	CancellationReason string      `json:"cancellation_reason,omitempty"`
	ReportReason       string      `json:"report_reason,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// NewOrder builds a PENDING order with the total computed from its line items.
func NewOrder(customerID, restaurantID uuid.UUID, idempotencyKey string, items []OrderItem, now time.Time) Order {
	var total int64
	for _, item := range items {
		total += item.SubtotalCents()
	}

	return Order{
		ID:             uuid.New(),
		CustomerID:     customerID,
		RestaurantID:   restaurantID,
		IdempotencyKey: idempotencyKey,
		Status:         OrderStatusPending,
		Items:          items,
		TotalCents:     total,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// transitionTo validates the move against the transition table and returns the
// updated copy. Pure value transformation: persistence and audit logging are
// the caller's responsibility, invoked immediately after success.
func (o Order) transitionTo(target OrderStatus, now time.Time) (Order, error) {
	if !o.Status.CanTransitionTo(target) {
		return o, invalidTransitionError(o.Status, target)
	}

	o.Status = target
	o.UpdatedAt = now

	return o, nil
}

// Accept moves a PENDING order to ACCEPTED.
func (o Order) Accept(now time.Time) (Order, error) {
	return o.transitionTo(OrderStatusAccepted, now)
}

// Reject moves a PENDING order to REJECTED. The reason is mandatory.
// An already-REJECTED order is returned unchanged: a retried reject must
// read as success even when the response cache missed the first reply.
func (o Order) Reject(reason string, now time.Time) (Order, error) {
	if o.Status == OrderStatusRejected {
		return o, nil
	}
	if strings.TrimSpace(reason) == "" {
		return o, domainerrors.ErrMissingReason.WithDetails("reject requires a non-blank reason")
	}

	rejected, err := o.transitionTo(OrderStatusRejected, now)
	if err != nil {
		return o, err
	}
	rejected.RejectionReason = reason

	return rejected, nil
}

// Cancel moves the order to CANCELLED from any pre-READY state. The reason is
// optional; goods in final handling (READY, DELIVERED) can no longer be cancelled.
// An already-CANCELLED order is returned unchanged, original reason intact.
func (o Order) Cancel(reason string, now time.Time) (Order, error) {
	if o.Status == OrderStatusCancelled {
		return o, nil
	}

	cancelled, err := o.transitionTo(OrderStatusCancelled, now)
	if err != nil {
		return o, err
	}
	cancelled.CancellationReason = reason

	return cancelled, nil
}

// Report moves the order to REPORTED from any state past acceptance,
// including after delivery. The reason is mandatory.
// An already-REPORTED order is returned unchanged, original reason intact.
func (o Order) Report(reason string, now time.Time) (Order, error) {
	if o.Status == OrderStatusReported {
		return o, nil
	}
	if strings.TrimSpace(reason) == "" {
		return o, domainerrors.ErrMissingReason.WithDetails("report requires a non-blank reason")
	}

	reported, err := o.transitionTo(OrderStatusReported, now)
	if err != nil {
		return o, err
	}
	reported.ReportReason = reason

	return reported, nil
}

// Confirm moves an ACCEPTED order to CONFIRMED.
func (o Order) Confirm(now time.Time) (Order, error) {
	return o.transitionTo(OrderStatusConfirmed, now)
}

// StartPreparing moves a CONFIRMED order to PREPARING.
func (o Order) StartPreparing(now time.Time) (Order, error) {
	return o.transitionTo(OrderStatusPreparing, now)
}

// MarkReady moves a PREPARING order to READY.
func (o Order) MarkReady(now time.Time) (Order, error) {
	return o.transitionTo(OrderStatusReady, now)
}

// MarkDelivered moves a READY order to DELIVERED.
func (o Order) MarkDelivered(now time.Time) (Order, error) {
	return o.transitionTo(OrderStatusDelivered, now)
}

// invalidTransitionError builds a self-describing InvalidTransition error
// carrying the current state and the computed list of valid next states.
func invalidTransitionError(current, target OrderStatus) error {
	next := current.ValidNextStates()
	names := make([]string, len(next))
	for i, s := range next {
		names[i] = s.String()
	}

	return domainerrors.ErrInvalidTransition.WithDetails(fmt.Sprintf(
		"cannot transition from %s to %s; valid next states: [%s]",
		current, target, strings.Join(names, ", "),
	))
}
