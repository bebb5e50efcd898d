package catalog

// Category groups products on the storefront home page.
type Category struct {
	ID       ID     `json:"id" mapstructure:"id"`
	Name     string `json:"name" mapstructure:"name"`
	ImageURL string `json:"imageUrl" mapstructure:"imageUrl"`
}
