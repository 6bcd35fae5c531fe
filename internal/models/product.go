package models

// Product is a catalog entry. Read-only to the client core; the catalog
// collaborator owns it. A zero DiscountedPrice means no discount exists.
type Product struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category"`
	Genre           string  `json:"genre"`
	Publisher       string  `json:"publisher,omitempty"`
	Language        string  `json:"language,omitempty"`
	Quantity        int     `json:"quantity,omitempty"`
	AverageRating   float64 `json:"averageRating,omitempty"`
	NumRatings      int     `json:"numRatings,omitempty"`
}

// HasDiscount reports whether a discounted price is present and strictly
// below the list price.
func (p Product) HasDiscount() bool {
	return p.DiscountedPrice > 0 && p.DiscountedPrice < p.Price
}

// EffectivePrice is the discounted price when it undercuts the list price,
// else the list price. Cart lines capture this value at add time.
func (p Product) EffectivePrice() float64 {
	if p.HasDiscount() {
		return p.DiscountedPrice
	}
	return p.Price
}
