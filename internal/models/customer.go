package models

import (
	"encoding/json"
	"time"
)

// Customer is a shop customer. Orders and TotalSpent are stored denormalized
// and may drift from the order records; reports derive them from orders.
type Customer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Orders     int     `json:"orders"`
	TotalSpent float64 `json:"totalSpent"`
	Joined     string  `json:"joined"`
}

// UnmarshalJSON reads the numeric fields leniently, like Order.Total.
func (c *Customer) UnmarshalJSON(data []byte) error {
	type plain Customer
	aux := struct {
		*plain
		Orders     Amount `json:"orders"`
		TotalSpent Amount `json:"totalSpent"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Orders = aux.Orders.Int()
	c.TotalSpent = aux.TotalSpent.Float()
	return nil
}

// JoinedAt parses the Joined date in UTC.
func (c Customer) JoinedAt() (time.Time, bool) {
	return ParseDate(c.Joined)
}
