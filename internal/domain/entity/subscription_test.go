package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscription_IsValid_Boundary(t *testing.T) {
	now := time.Now()
	before := now.Add(-time.Second)
	after := now.Add(time.Second)

	sub := Subscription{Status: SubscriptionStatusActive, EndDate: &now}

	// end_date strictly after "now" grants visibility; at or before it does not.
	assert.True(t, sub.IsValid(before))
	assert.False(t, sub.IsValid(now))
	assert.False(t, sub.IsValid(after))
}

func TestSubscription_IsValid_RequiresActiveStatus(t *testing.T) {
	now := time.Now()
	end := now.AddDate(0, 1, 0)

	for _, status := range []SubscriptionStatus{
		SubscriptionStatusPending,
		SubscriptionStatusExpired,
		SubscriptionStatusCancelled,
	} {
		sub := Subscription{Status: status, EndDate: &end}
		assert.False(t, sub.IsValid(now), "status %s should never be valid", status)
	}
}

func TestSubscription_IsValid_NilEndDate(t *testing.T) {
	now := time.Now()
	sub := Subscription{Status: SubscriptionStatusActive}

	assert.False(t, sub.IsValid(now))
	assert.False(t, sub.IsExpired(now))
}

func TestSubscription_IsOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, Subscription{Status: SubscriptionStatusActive, EndDate: &past}.IsOverdue(now))
	assert.True(t, Subscription{Status: SubscriptionStatusActive, EndDate: &now}.IsOverdue(now))
	assert.False(t, Subscription{Status: SubscriptionStatusActive, EndDate: &future}.IsOverdue(now))
	assert.False(t, Subscription{Status: SubscriptionStatusExpired, EndDate: &past}.IsOverdue(now))
	assert.False(t, Subscription{Status: SubscriptionStatusPending}.IsOverdue(now))
}

func TestSubscription_WithActivated(t *testing.T) {
	now := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	sub := Subscription{Status: SubscriptionStatusPending}

	activated := sub.WithActivated(now)

	assert.Equal(t, SubscriptionStatusActive, activated.Status)
	assert.Equal(t, now, *activated.StartDate)
	// One calendar month later; AddDate normalizes Jan 31 + 1 month.
	assert.Equal(t, now.AddDate(0, 1, 0), *activated.EndDate)
	assert.True(t, activated.IsValid(now))
}

func TestSubscription_DaysRemaining(t *testing.T) {
	now := time.Now()
	end := now.Add(72*time.Hour + time.Minute)
	sub := Subscription{Status: SubscriptionStatusActive, EndDate: &end}

	assert.Equal(t, 3, sub.DaysRemaining(now))

	expired := Subscription{Status: SubscriptionStatusExpired, EndDate: &end}
	assert.Equal(t, 0, expired.DaysRemaining(now))
}
