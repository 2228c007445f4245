package order

// Order is the record shape served by the listing endpoint.
type Order struct {
	ID        int `json:"id"`
	ProductID int `json:"productId"`
	Qty       int `json:"qty"`
}

// Fixed returns the listing served on every request. A fresh slice is built
// each call so handlers never share a mutable backing array.
func Fixed() []Order {
	return []Order{{ID: 10, ProductID: 1, Qty: 2}}
}
