package favorites

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/api/cart"
	catalogEntity "storefront.GO/model/entity/catalog"
)

func init() {
	api.RegisterModule(RegisterFavoritesRoutes)
}

func RegisterFavoritesRoutes(apiGroup *echo.Group, d *api.Deps) {
	g := apiGroup.Group("/favorites")

	list := func(c echo.Context) error {
		products := d.Store.FavoritesView(c.Request().Context())
		return c.JSON(http.StatusOK, echo.Map{"products": products, "count": d.Store.Favorites.Count()})
	}

	// GET /api/favorites
	g.GET("", list)

	// POST /api/favorites {"id": "1"}
	g.POST("", func(c echo.Context) error {
		var body struct {
			ID catalogEntity.ID `json:"id"`
		}
		if err := c.Bind(&body); err != nil {
			return api.Error(c, http.StatusBadRequest, err.Error())
		}
		if body.ID.IsZero() {
			return api.Error(c, http.StatusBadRequest, "id is required")
		}
		if err := d.Store.AddToFavorites(c.Request().Context(), body.ID); err != nil {
			return api.Error(c, cart.StatusFor(err), err.Error())
		}
		return list(c)
	})

	// POST /api/favorites/:id/toggle
	g.POST("/:id/toggle", func(c echo.Context) error {
		in, err := d.Store.ToggleFavorite(c.Request().Context(), catalogEntity.ID(c.Param("id")))
		if err != nil {
			return api.Error(c, cart.StatusFor(err), err.Error())
		}
		return c.JSON(http.StatusOK, echo.Map{"id": c.Param("id"), "favorite": in})
	})

	// DELETE /api/favorites/:id
	g.DELETE("/:id", func(c echo.Context) error {
		if err := d.Store.Favorites.Remove(catalogEntity.ID(c.Param("id"))); err != nil {
			return api.Error(c, http.StatusInternalServerError, err.Error())
		}
		return list(c)
	})
}
