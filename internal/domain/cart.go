package domain

// CartItem is one product the user selected. Quantity zero means the
// caller never set it and is treated as 1.
type CartItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity,omitempty"`
}

// EffectiveQuantity returns the quantity used for totals.
func (i CartItem) EffectiveQuantity() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// Subtotal is price times effective quantity.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.EffectiveQuantity())
}
