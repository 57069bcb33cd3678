// Package campaign decides which promotional offers are active for a date or a forecast month.
package campaign

import (
	"bytes"
	"slices"
	"time"

	"salesinsight/internal/domain/entity"
)

// ActiveOffersFor returns the enabled offers whose range covers date, most recently created first.
func ActiveOffersFor(offers []*entity.Offer, date time.Time) []*entity.Offer {
	active := make([]*entity.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.IsCurrentlyActive(date) {
			active = append(active, offer)
		}
	}
	sortNewestFirst(active)

	return active
}

// OverlapsMonth reports whether an enabled offer's [start, end] range intersects the calendar month
// monthIndex months after base.
func OverlapsMonth(offer *entity.Offer, monthIndex int, base entity.Month) bool {
	if !offer.IsActive {
		return false
	}
	target := base.AddMonths(monthIndex)

	start := entity.TruncateToDate(offer.StartDate)
	end := entity.TruncateToDate(offer.EndDate)

	return !start.After(target.End()) && !end.Before(target.Start())
}

// Resolve annotates one forecast month. When several offers overlap, the most recently created one
// (highest id) names the month.
func Resolve(offers []*entity.Offer, monthIndex int, base entity.Month) (bool, *string) {
	var winner *entity.Offer
	for _, offer := range offers {
		if !OverlapsMonth(offer, monthIndex, base) {
			continue
		}
		if winner == nil || bytes.Compare(offer.ID[:], winner.ID[:]) > 0 {
			winner = offer
		}
	}
	if winner == nil {
		return false, nil
	}
	name := winner.Name

	return true, &name
}

func sortNewestFirst(offers []*entity.Offer) {
	slices.SortStableFunc(offers, func(a, b *entity.Offer) int {
		return bytes.Compare(b.ID[:], a.ID[:])
	})
}
