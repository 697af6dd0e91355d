package models

// Dataset is the full set of records loaded at startup. It is shared read-only
// for the lifetime of the process.
type Dataset struct {
	Customers []Customer
	Orders    []Order
	Products  []Product
}
