package html

import (
	"embed"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	parts "storefront.GO/html/parts"
	catalogEntity "storefront.GO/model/entity/catalog"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageSize is the number of products per category page.
const PageSize = 20

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// TemplateFuncs returns FuncMap with helpers for pagination and prices.
func TemplateFuncs(price func(float64) string) template.FuncMap {
	return template.FuncMap{
		"add":   func(a, b int) int { return a + b },
		"sub":   func(a, b int) int { return a - b },
		"price": price,
	}
}

// NewTemplate parses the embedded page templates.
func NewTemplate(price func(float64) string) (*Template, error) {
	t, err := template.New("storefront").Funcs(TemplateFuncs(price)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Template{Templates: t}, nil
}

// localPath reports whether p stays on this host when used as a redirect target.
// "//host" and "/\host" are read by browsers as another host.
func localPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}

// RegisterStorefrontHTMLRoutes registers the server-rendered storefront pages.
func RegisterStorefrontHTMLRoutes(e *echo.Echo, d *api.Deps) {
	t, err := NewTemplate(d.Store.Orders.FormatPrice)
	if err != nil {
		panic("html templates: " + err.Error())
	}
	e.Renderer = t

	page := func(title string, data map[string]interface{}) map[string]interface{} {
		cart, favorites := d.Store.Counts()
		data["Title"] = title
		data["Settings"] = d.Store.Settings
		data["CriticalCSS"] = template.CSS(parts.GetCriticalCSSCached())
		data["CartCount"] = cart
		data["FavoritesCount"] = favorites
		if d.Feed != nil {
			data["Notifications"] = d.Feed.Active()
		}
		return data
	}

	// back redirects to the page the form was posted from.
	back := func(c echo.Context, fallback string) error {
		target := fallback
		if u, err := url.Parse(c.Request().Referer()); err == nil && localPath(u.Path) {
			target = u.RequestURI()
		}
		return c.Redirect(http.StatusSeeOther, target)
	}

	e.GET("/", func(c echo.Context) error {
		view := d.Store.CatalogView(c.Request().Context())
		step := 0
		if iv := d.Store.Settings.BannerInterval; iv > 0 {
			step = int(time.Now().UnixMilli() / int64(iv))
		}
		image, animation := d.Store.Settings.Banner(step)
		return c.Render(http.StatusOK, "home.html", page("Home", map[string]interface{}{
			"Categories":      view.Categories,
			"Products":        view.Products,
			"BannerImage":     image,
			"BannerAnimation": animation,
		}))
	})

	e.GET("/category/:id", func(c echo.Context) error {
		id := catalogEntity.ID(c.Param("id"))
		q := c.QueryParam("q")
		products := d.Store.ProductsView(c.Request().Context(), id, q)

		p := 1
		if pStr := c.QueryParam("p"); pStr != "" {
			if n, err := strconv.Atoi(pStr); err == nil && n > 0 {
				p = n
			}
		}
		total := len(products)
		totalPages := (total + PageSize - 1) / PageSize
		if totalPages == 0 {
			totalPages = 1
		}
		if p > totalPages {
			p = totalPages
		}
		start := (p - 1) * PageSize
		end := start + PageSize
		if end > total {
			end = total
		}
		pageNumbers := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pageNumbers = append(pageNumbers, i)
		}
		prev, next := p-1, p+1
		if prev < 1 {
			prev = 1
		}
		if next > totalPages {
			next = totalPages
		}
		return c.Render(http.StatusOK, "category.html", page("Category", map[string]interface{}{
			"CategoryID":  id,
			"Query":       q,
			"Products":    products[start:end],
			"Page":        p,
			"TotalPages":  totalPages,
			"PageNumbers": pageNumbers,
			"PrevPage":    prev,
			"NextPage":    next,
		}))
	})

	e.GET("/product/:id", func(c echo.Context) error {
		detail, ok := d.Store.ProductDetail(c.Request().Context(), catalogEntity.ID(c.Param("id")))
		if !ok {
			return c.String(http.StatusNotFound, "Product not found")
		}
		return c.Render(http.StatusOK, "product.html", page(detail.Product.Name, map[string]interface{}{
			"Detail": detail,
		}))
	})

	e.GET("/cart", func(c echo.Context) error {
		return c.Render(http.StatusOK, "cart.html", page("Cart", map[string]interface{}{
			"Cart": d.Store.CartView(c.Request().Context()),
		}))
	})

	e.GET("/favorites", func(c echo.Context) error {
		return c.Render(http.StatusOK, "favorites.html", page("Favorites", map[string]interface{}{
			"Products": d.Store.FavoritesView(c.Request().Context()),
		}))
	})

	e.POST("/cart/add", func(c echo.Context) error {
		id := catalogEntity.ID(strings.TrimSpace(c.FormValue("id")))
		_ = d.Store.AddToCart(c.Request().Context(), id)
		return back(c, "/cart")
	})

	e.POST("/cart/:id/update", func(c echo.Context) error {
		qty, err := strconv.Atoi(c.FormValue("quantity"))
		if err == nil {
			_ = d.Store.Cart.UpdateQuantity(catalogEntity.ID(c.Param("id")), qty)
		}
		return c.Redirect(http.StatusSeeOther, "/cart")
	})

	e.POST("/cart/:id/remove", func(c echo.Context) error {
		_ = d.Store.Cart.Remove(catalogEntity.ID(c.Param("id")))
		return c.Redirect(http.StatusSeeOther, "/cart")
	})

	e.POST("/cart/clear", func(c echo.Context) error {
		_ = d.Store.Cart.Clear()
		return c.Redirect(http.StatusSeeOther, "/cart")
	})

	e.POST("/favorites/:id/toggle", func(c echo.Context) error {
		_, _ = d.Store.ToggleFavorite(c.Request().Context(), catalogEntity.ID(c.Param("id")))
		return back(c, "/favorites")
	})
}
