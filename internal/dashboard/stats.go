package dashboard

import (
	"fmt"
	"math"
	"time"

	"foodpool-be/internal/listing"
	"foodpool-be/internal/order"
	"foodpool-be/internal/review"

	"github.com/google/uuid"
)

const (
	chartDays        = 7
	recentTxns       = 5
	noValue          = "-"
	unknownDishTitle = "Unknown"
)

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func startOfMonth(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

func shortWeekday(t time.Time, loc *time.Location) string {
	return t.In(loc).Weekday().String()[:3]
}

// SummarizeCustomer excludes cancelled orders from the amount spent.
func SummarizeCustomer(orders []order.Order, favorites int) CustomerStats {
	s := CustomerStats{TotalOrders: len(orders), FavoritesCount: favorites}
	cooks := make(map[uuid.UUID]struct{})
	for _, o := range orders {
		cooks[o.CookID] = struct{}{}
		if o.Status != order.StatusCancelled {
			s.TotalSpent += o.TotalPrice
		}
	}
	s.CooksSupported = len(cooks)
	return s
}

// SummarizeCook expects orders with cancelled ones already removed.
func SummarizeCook(
	listings []listing.Listing,
	orders []order.Order,
	summary review.Summary,
	now time.Time,
	loc *time.Location,
) CookStats {
	s := CookStats{
		TotalOrders:  len(orders),
		Rating:       summary.AverageRating,
		TotalReviews: summary.TotalRatings,
	}
	for _, l := range listings {
		if l.IsActive {
			s.ActiveListings++
		}
	}
	month := startOfMonth(now, loc)
	for _, o := range orders {
		s.TotalEarnings += o.TotalPrice
		if !o.CreatedAt.Before(month) {
			s.ThisMonthEarnings += o.TotalPrice
		}
	}
	return s
}

// ComputeEarnings aggregates completed orders, given newest first. Day
// boundaries are taken in loc.
func ComputeEarnings(orders []order.Order, now time.Time, loc *time.Location) Earnings {
	today := startOfDay(now, loc)
	weekStart := today.AddDate(0, 0, -(chartDays - 1))
	month := startOfMonth(now, loc)

	chart := make([]DayAmount, chartDays)
	slot := make(map[string]int, chartDays)
	for i := 0; i < chartDays; i++ {
		name := shortWeekday(today.AddDate(0, 0, i-(chartDays-1)), loc)
		chart[i] = DayAmount{Name: name}
		slot[name] = i
	}

	var (
		e         Earnings
		total     float64
		dishOrder []string
		dishes    = make(map[string]int)
		customers = make(map[uuid.UUID]int)
		completed = make([]order.Order, 0, len(orders))
	)
	for _, o := range orders {
		if o.Status != order.StatusCompleted {
			continue
		}
		completed = append(completed, o)
		total += o.TotalPrice

		day := startOfDay(o.CreatedAt, loc)
		if day.Equal(today) {
			e.Today += o.TotalPrice
		}
		if !day.Before(weekStart) {
			e.Week += o.TotalPrice
			if i, ok := slot[shortWeekday(o.CreatedAt, loc)]; ok {
				chart[i].Amount += o.TotalPrice
			}
		}
		if !day.Before(month) {
			e.Month += o.TotalPrice
		}

		dish := o.ListingTitle
		if dish == "" {
			dish = unknownDishTitle
		}
		if _, seen := dishes[dish]; !seen {
			dishOrder = append(dishOrder, dish)
		}
		dishes[dish]++
		customers[o.CustomerID]++
	}

	e.TotalOrders = len(completed)
	if e.TotalOrders > 0 {
		e.AvgOrder = math.Round(total / float64(e.TotalOrders))
	}
	e.Chart = chart
	e.BestDay = bestDay(chart)
	e.TopDish = topDish(dishOrder, dishes)
	e.RepeatRate = repeatRate(customers)

	if len(completed) > recentTxns {
		completed = completed[:recentTxns]
	}
	e.Transactions = completed
	return e
}

// bestDay prefers the later day on ties.
func bestDay(chart []DayAmount) string {
	best := chart[0]
	for _, d := range chart[1:] {
		if d.Amount >= best.Amount {
			best = d
		}
	}
	if best.Amount <= 0 {
		return noValue
	}
	return best.Name
}

// topDish prefers the dish seen later on ties.
func topDish(firstSeen []string, counts map[string]int) string {
	top, n := noValue, 0
	for _, dish := range firstSeen {
		if counts[dish] >= n {
			top, n = dish, counts[dish]
		}
	}
	return top
}

func repeatRate(customers map[uuid.UUID]int) string {
	if len(customers) == 0 {
		return "0%"
	}
	repeat := 0
	for _, n := range customers {
		if n > 1 {
			repeat++
		}
	}
	return fmt.Sprintf("%d%%", int(math.Round(float64(repeat)/float64(len(customers))*100)))
}
