package analytics

import (
	"time"

	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
)

// DashboardTopN is the size of the ranking widgets.
const DashboardTopN = 5

// Spend thresholds; lower bounds are inclusive.
const (
	VIPThreshold     = 1000.0
	RegularThreshold = 300.0
)

// NewCustomerWindow is how recently a customer must have joined to count as new.
const NewCustomerWindow = 30 * 24 * time.Hour

type Tier string

const (
	TierVIP     Tier = "VIP"
	TierRegular Tier = "Regular"
	TierLow     Tier = "Low"
)

// TierFor places a spend amount in exactly one tier.
func TierFor(spent float64) Tier {
	switch {
	case spent >= VIPThreshold:
		return TierVIP
	case spent >= RegularThreshold:
		return TierRegular
	default:
		return TierLow
	}
}

// Segments partitions customers by tier. Each customer is in exactly one slice.
type Segments struct {
	VIP     []models.Customer
	Regular []models.Customer
	Low     []models.Customer
}

func SegmentCustomers(customers []models.Customer) Segments {
	s := Segments{
		VIP:     []models.Customer{},
		Regular: []models.Customer{},
		Low:     []models.Customer{},
	}
	for _, c := range customers {
		switch TierFor(c.TotalSpent) {
		case TierVIP:
			s.VIP = append(s.VIP, c)
		case TierRegular:
			s.Regular = append(s.Regular, c)
		default:
			s.Low = append(s.Low, c)
		}
	}
	return s
}

// DeriveCustomerTotals returns copies of customers whose Orders and
// TotalSpent are recomputed from orders. The stored values are discarded.
func DeriveCustomerTotals(customers []models.Customer, orders []models.Order) []models.Customer {
	spent := GroupBySum(orders,
		func(o models.Order) string { return o.CustomerID },
		orderTotal,
	)
	counts := make(map[string]int, spent.Len())
	for _, o := range orders {
		counts[o.CustomerID]++
	}

	out := make([]models.Customer, len(customers))
	for i, c := range customers {
		total, _ := spent.Get(c.ID)
		c.TotalSpent = total
		c.Orders = counts[c.ID]
		out[i] = c
	}
	return out
}

func TopCustomersBySpend(customers []models.Customer, n int) []models.Customer {
	return TopN(customers, func(c models.Customer) float64 { return c.TotalSpent }, n)
}

func TopCustomersByOrders(customers []models.Customer, n int) []models.Customer {
	return TopN(customers, func(c models.Customer) float64 { return float64(c.Orders) }, n)
}

type CustomerActivity struct {
	New       int
	Returning int
}

// SplitByActivity counts customers who joined within NewCustomerWindow of now
// as new; everyone else, including customers with an unreadable join date,
// is returning.
func SplitByActivity(customers []models.Customer, now time.Time) CustomerActivity {
	isNew := func(c models.Customer) bool {
		joined, ok := c.JoinedAt()
		return ok && now.Sub(joined) <= NewCustomerWindow
	}
	n := CountWhere(customers, isNew)
	return CustomerActivity{New: n, Returning: len(customers) - n}
}
