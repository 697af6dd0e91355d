package models

import "encoding/json"

// Product represents a catalog entry in the back office.
type Product struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	Stock    int     `json:"stock"`
}

// UnmarshalJSON reads price, rating and stock leniently, like Order.Total.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	aux := struct {
		*plain
		Price  Amount `json:"price"`
		Rating Amount `json:"rating"`
		Stock  Amount `json:"stock"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Price = aux.Price.Float()
	p.Rating = aux.Rating.Float()
	p.Stock = aux.Stock.Int()
	return nil
}
