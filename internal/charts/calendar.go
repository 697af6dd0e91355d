package charts

import "github.com/rogerio-castellano/backoffice-analytics/internal/models"

const defaultEventColor = "#64748b"

var statusColors = map[models.OrderStatus]string{
	models.StatusDelivered: "#10b981",
	models.StatusPending:   "#f59e0b",
	models.StatusShipped:   "#3b82f6",
	models.StatusCanceled:  "#ef4444",
}

// Event is an entry of the order calendar.
type Event struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Date       string  `json:"date"`
	Color      string  `json:"color"`
	CustomerID string  `json:"customerId"`
	ProductID  string  `json:"productId"`
	Total      float64 `json:"total"`
	Status     string  `json:"status"`
}

func StatusColor(s models.OrderStatus) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return defaultEventColor
}

func shortID(id string, n int) string {
	if len(id) <= n {
		return id
	}
	return id[:n]
}

// CalendarEvents maps orders onto calendar events, one per order.
func CalendarEvents(orders []models.Order) []Event {
	out := make([]Event, len(orders))
	for i, o := range orders {
		out[i] = Event{
			ID:         o.ID,
			Title:      "Order #" + shortID(o.ID, 5),
			Date:       o.Date,
			Color:      StatusColor(o.Status),
			CustomerID: o.CustomerID,
			ProductID:  o.ProductID,
			Total:      o.Total.Float(),
			Status:     string(o.Status),
		}
	}
	return out
}
