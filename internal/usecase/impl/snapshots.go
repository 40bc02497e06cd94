package impl

import (
	"time"

	"mesa/internal/domain/entity"
)

// Snapshot helpers flatten entities into the opaque state maps stored on
// audit entries. Only business-meaningful fields are captured; timestamps
// live on the entry itself.

func restaurantSnapshot(r *entity.Restaurant) map[string]any {
	if r == nil {
		return nil
	}

	return map[string]any{
		"id":       r.ID.String(),
		"owner_id": r.OwnerID.String(),
		"name":     r.Name,
		"status":   r.Status.String(),
		"deleted":  r.IsDeleted(),
	}
}

func subscriptionSnapshot(s *entity.Subscription) map[string]any {
	if s == nil {
		return nil
	}

	snapshot := map[string]any{
		"id":                s.ID.String(),
		"restaurant_id":     s.RestaurantID.String(),
		"status":            s.Status.String(),
		"monthly_fee_cents": s.MonthlyFeeCents,
	}
	if s.StartDate != nil {
		snapshot["start_date"] = s.StartDate.Format(time.RFC3339)
	}
	if s.EndDate != nil {
		snapshot["end_date"] = s.EndDate.Format(time.RFC3339)
	}

	return snapshot
}

func productSnapshot(p *entity.Product) map[string]any {
	if p == nil {
		return nil
	}

	return map[string]any{
		"id":            p.ID.String(),
		"restaurant_id": p.RestaurantID.String(),
		"name":          p.Name,
		"price_cents":   p.PriceCents,
		"quantity":      p.Quantity,
		"status":        p.Status.String(),
		"deleted":       p.IsDeleted(),
	}
}

func orderSnapshot(o *entity.Order) map[string]any {
	if o == nil {
		return nil
	}

	return map[string]any{
		"id":            o.ID.String(),
		"customer_id":   o.CustomerID.String(),
		"restaurant_id": o.RestaurantID.String(),
		"status":        o.Status.String(),
		"total_cents":   o.TotalCents,
	}
}
