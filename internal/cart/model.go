package cart

// LineItem is one cart row. Rows are keyed by (product, size, color);
// adding the same key again merges by summing quantity.
type LineItem struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Size          string  `json:"size"`
	Color         string  `json:"color,omitempty"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	Discount      int     `json:"discount,omitempty"`
	Quantity      int     `json:"quantity"`
	Image         string  `json:"image,omitempty"`
}

type lineKey struct {
	productID string
	size      string
	color     string
}

func (li LineItem) key() lineKey {
	return lineKey{productID: li.ProductID, size: li.Size, color: li.Color}
}

// originalUnitPrice falls back to the unit price when the item was
// never discounted.
func (li LineItem) originalUnitPrice() float64 {
	if li.OriginalPrice > 0 {
		return li.OriginalPrice
	}
	return li.Price
}
