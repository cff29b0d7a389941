package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/autohaus/dealership/internal/core/domain"
)

const feedLimit = 5

var activityIcons = map[domain.ActivityType]string{
	domain.ActivitySale:   "dollar-sign",
	domain.ActivityOrder:  "shopping-cart",
	domain.ActivityUpdate: "refresh-cw",
}

// ActivityFeed turns recent orders into at most five feed entries, newest
// first, relative to now.
func ActivityFeed(orders []domain.RecentOrder, now time.Time) []domain.Activity {
	sorted := make([]domain.RecentOrder, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > feedLimit {
		sorted = sorted[:feedLimit]
	}

	feed := make([]domain.Activity, 0, len(sorted))
	for _, o := range sorted {
		kind := activityType(o.Status)
		feed = append(feed, domain.Activity{
			ID:      o.ID,
			Type:    kind,
			Message: activityMessage(kind, o),
			Time:    TimeAgo(o.CreatedAt, now),
			Icon:    activityIcons[kind],
		})
	}
	return feed
}

func activityType(status domain.OrderStatus) domain.ActivityType {
	switch status {
	case domain.OrderDelivered:
		return domain.ActivitySale
	case domain.OrderPending:
		return domain.ActivityOrder
	default:
		return domain.ActivityUpdate
	}
}

func activityMessage(kind domain.ActivityType, o domain.RecentOrder) string {
	client := orUnknown(o.ClientName)
	car := (&domain.Car{Brand: o.CarBrand, Model: o.CarModel}).DisplayName()
	switch kind {
	case domain.ActivitySale:
		return fmt.Sprintf("%s sold to %s", car, client)
	case domain.ActivityOrder:
		return fmt.Sprintf("New order from %s for %s", client, car)
	default:
		return fmt.Sprintf("Order for %s updated (%s)", car, orUnknown(string(o.Status)))
	}
}

func orUnknown(s string) string {
	if s == "" {
		return domain.UnknownLabel
	}
	return s
}

// TimeAgo renders t relative to now at minute, hour or day granularity.
// Anything older than a week is shown as an absolute date.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d <= 7*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	default:
		return t.Format("Jan 2, 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
