package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	catalogEntity "storefront.GO/model/entity/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// RegisterCatalogRoutes exposes settings, categories and products. Every request reads
// the catalog documents fresh.
func RegisterCatalogRoutes(g *echo.Group, d *api.Deps) {
	// GET /api/settings
	g.GET("/settings", func(c echo.Context) error {
		return c.JSON(http.StatusOK, d.Store.Settings)
	})

	// GET /api/categories
	g.GET("/categories", func(c echo.Context) error {
		cats, err := d.Store.Loader.Categories(c.Request().Context())
		if cats == nil {
			cats = []catalogEntity.Category{}
		}
		res := echo.Map{"categories": cats}
		if err != nil {
			res["error"] = err.Error()
		}
		return c.JSON(http.StatusOK, res)
	})

	// GET /api/products?categoryId=1&q=abaya
	g.GET("/products", func(c echo.Context) error {
		products := d.Store.ProductsView(
			c.Request().Context(),
			catalogEntity.ID(c.QueryParam("categoryId")),
			c.QueryParam("q"),
		)
		return c.JSON(http.StatusOK, echo.Map{"products": products, "total": len(products)})
	})

	// GET /api/products/:id
	g.GET("/products/:id", func(c echo.Context) error {
		detail, ok := d.Store.ProductDetail(c.Request().Context(), catalogEntity.ID(c.Param("id")))
		if !ok {
			return api.Error(c, http.StatusNotFound, "product not found")
		}
		return c.JSON(http.StatusOK, detail)
	})
}
