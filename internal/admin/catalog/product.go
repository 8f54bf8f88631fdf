package catalog

// Product is the server-owned catalog record. Field names follow the wire
// format of the backend API; is_enabled travels as 0/1 rather than a bool.
type Product struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	OriginPrice float64  `json:"origin_price"`
	Price       float64  `json:"price"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Enabled     int      `json:"is_enabled"`
	ImageURL    string   `json:"imageUrl"`
	ImagesURL   []string `json:"imagesUrl"`
}

// IsEnabled reports whether the record is active in the storefront.
func (p Product) IsEnabled() bool {
	return p.Enabled != 0
}

// Clone returns a copy that shares no slice storage with the receiver.
func (p Product) Clone() Product {
	out := p
	if p.ImagesURL != nil {
		out.ImagesURL = append([]string(nil), p.ImagesURL...)
	}
	return out
}
