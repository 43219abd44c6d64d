package orderstatus

import "app/internal/domain/model"

// DefaultStatus is the resolved status for orders with no history rows yet.
const DefaultStatus = "Pending"

// Resolve returns the label of the most recent status history entry.
// Ties on CreatedAt break by highest ID so the result does not depend
// on the order the rows were loaded in.
func Resolve(entries []model.OrderStatusHistory) string {
	if len(entries) == 0 {
		return DefaultStatus
	}

	latest := entries[0]
	for _, e := range entries[1:] {
		if e.CreatedAt.After(latest.CreatedAt) {
			latest = e
			continue
		}
		if e.CreatedAt.Equal(latest.CreatedAt) && e.ID > latest.ID {
			latest = e
		}
	}
	return latest.Status
}
