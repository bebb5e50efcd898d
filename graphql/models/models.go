package models

import (
	gql "github.com/graph-gophers/graphql-go"

	"storefront.GO/model/entity/catalog"
	"storefront.GO/service/order"
	"storefront.GO/service/reconcile"
	"storefront.GO/service/storefront"
)

type Category struct {
	ID       gql.ID
	Name     string
	ImageURL *string
}

type Product struct {
	ID             gql.ID
	Name           string
	Price          float64
	FormattedPrice string
	MainImageURL   string
	Images         []string
	CategoryID     *gql.ID
	Description    *string
	Colors         []string
	IsAvailable    bool
}

type LineItem struct {
	Product  *Product
	Quantity int32
	Subtotal float64
}

type Links struct {
	WhatsApp string
	Telegram string
}

type Cart struct {
	Lines          []*LineItem
	Total          float64
	FormattedTotal string
	Count          int32
	Message        *string
	Links          *Links
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func NewCategory(c catalog.Category) *Category {
	return &Category{ID: gql.ID(c.ID), Name: c.Name, ImageURL: optional(c.ImageURL)}
}

func NewCategories(cats []catalog.Category) []*Category {
	out := make([]*Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, NewCategory(c))
	}
	return out
}

// NewProduct maps p; format renders the price.
func NewProduct(p catalog.Product, format func(float64) string) *Product {
	out := &Product{
		ID:             gql.ID(p.ID),
		Name:           p.Name,
		Price:          p.Price,
		FormattedPrice: format(p.Price),
		MainImageURL:   p.MainImageURL,
		Images:         p.Images(),
		Description:    optional(p.Description),
		Colors:         p.Colors,
		IsAvailable:    p.IsAvailable,
	}
	if out.Colors == nil {
		out.Colors = []string{}
	}
	if !p.CategoryID.IsZero() {
		id := gql.ID(p.CategoryID)
		out.CategoryID = &id
	}
	return out
}

func NewProducts(products []catalog.Product, format func(float64) string) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		out = append(out, NewProduct(p, format))
	}
	return out
}

func NewLineItem(l reconcile.LineItem, format func(float64) string) *LineItem {
	return &LineItem{Product: NewProduct(l.Product, format), Quantity: int32(l.Quantity), Subtotal: l.Subtotal()}
}

func NewCart(v storefront.CartView, format func(float64) string) *Cart {
	c := &Cart{
		Lines:          make([]*LineItem, 0, len(v.Lines)),
		Total:          v.Total,
		FormattedTotal: v.FormattedTotal,
		Count:          int32(v.Count),
		Message:        optional(v.Message),
	}
	for _, l := range v.Lines {
		c.Lines = append(c.Lines, NewLineItem(l, format))
	}
	if v.Links != (order.Links{}) {
		c.Links = &Links{WhatsApp: v.Links.WhatsApp, Telegram: v.Links.Telegram}
	}
	return c
}
