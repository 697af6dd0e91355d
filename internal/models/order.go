package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Order is a single purchase. Total and Status are normalized when decoded so
// that nothing downstream has to coerce them again.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	ProductID  string      `json:"productId"`
	Total      Amount      `json:"total"`
	Status     OrderStatus `json:"status"`
	Date       string      `json:"date"`
}

// Time parses the order date in UTC. ok is false when the date is unusable.
func (o Order) Time() (time.Time, bool) {
	return ParseDate(o.Date)
}

// Amount is a currency value. The mock data ships totals both as numbers and
// as strings; anything that is not a finite number decodes to 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = ParseAmount(string(data))
	return nil
}

func (a Amount) Float() float64 {
	return float64(a)
}

// Int truncates toward zero, for counts that share the lenient decoding.
func (a Amount) Int() int {
	return int(a)
}

// ParseAmount coerces a raw JSON or CSV value to an Amount.
func ParseAmount(raw string) Amount {
	s := strings.TrimSpace(raw)
	if s == "" || s == "null" {
		return 0
	}
	if s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal([]byte(s), &unquoted); err != nil {
			return 0
		}
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Amount(v)
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCanceled   OrderStatus = "Canceled"
)

// NormalizeStatus maps the spellings found in the data onto one canonical
// value. "Cancelled" and "Canceled" are the same state. Unknown values are
// kept as they are.
func NormalizeStatus(raw string) OrderStatus {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "pending":
		return StatusPending
	case "processing":
		return StatusProcessing
	case "shipped":
		return StatusShipped
	case "delivered":
		return StatusDelivered
	case "canceled", "cancelled":
		return StatusCanceled
	}
	return OrderStatus(s)
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = ""
		return nil
	}
	*s = NormalizeStatus(raw)
	return nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses the ISO date forms used by the dataset. Values without a
// zone are read as UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
