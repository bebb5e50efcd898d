package catalog

// Product is one published catalog record. It is immutable for the session.
type Product struct {
	ID           ID       `json:"id" mapstructure:"id"`
	Name         string   `json:"name" mapstructure:"name"`
	Price        float64  `json:"price" mapstructure:"price"`
	MainImageURL string   `json:"mainImageUrl" mapstructure:"mainImageUrl"`
	Image2URL    string   `json:"image2Url,omitempty" mapstructure:"image2Url"`
	Image3URL    string   `json:"image3Url,omitempty" mapstructure:"image3Url"`
	CategoryID   ID       `json:"categoryId" mapstructure:"categoryId"`
	Description  string   `json:"description,omitempty" mapstructure:"description"`
	Colors       []string `json:"colors" mapstructure:"colors"`
	IsAvailable  bool     `json:"isAvailable" mapstructure:"isAvailable"`
}

// Images returns the product's image URLs, main image first, skipping empty ones.
func (p Product) Images() []string {
	out := make([]string, 0, 3)
	for _, u := range []string{p.MainImageURL, p.Image2URL, p.Image3URL} {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}
