package impl

import (
	"context"
	"time"

	"mesa/internal/domain/entity"
	"mesa/internal/domain/repository"

	"github.com/pkg/errors"
)

// isFullyVisible evaluates the customer-facing visibility predicate:
// the restaurant itself must be visible AND its newest subscription must be
// valid at the given instant. Recomputed on every read, never cached, so an
// expired subscription hides the restaurant with zero propagation delay.
func isFullyVisible(ctx context.Context, subscriptionRepo repository.SubscriptionRepository, restaurant *entity.Restaurant, now time.Time) (bool, error) {
	if restaurant == nil || !restaurant.IsVisible() {
		return false, nil
	}

	subscription, err := subscriptionRepo.FindCurrentByRestaurant(ctx, restaurant.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			// Never subscribed: not visible, not an error.
			return false, nil
		}

		return false, errors.Wrap(err, "failed to find current subscription")
	}

	return subscription.IsValid(now), nil
}
