package cart

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/storefront"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

type addRequest struct {
	ID catalogEntity.ID `json:"id"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// StatusFor maps storefront errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, storefront.ErrUnknownProduct):
		return http.StatusNotFound
	case errors.Is(err, storefront.ErrUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func RegisterCartRoutes(apiGroup *echo.Group, d *api.Deps) {
	g := apiGroup.Group("/cart")

	// GET /api/cart: reconciled lines, totals and order links
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, d.Store.CartView(c.Request().Context()))
	})

	// POST /api/cart {"id": "1"}
	g.POST("", func(c echo.Context) error {
		var body addRequest
		if err := c.Bind(&body); err != nil {
			return api.Error(c, http.StatusBadRequest, err.Error())
		}
		if body.ID.IsZero() {
			return api.Error(c, http.StatusBadRequest, "id is required")
		}
		if err := d.Store.AddToCart(c.Request().Context(), body.ID); err != nil {
			return api.Error(c, StatusFor(err), err.Error())
		}
		return c.JSON(http.StatusOK, d.Store.CartView(c.Request().Context()))
	})

	// PATCH /api/cart/:id {"quantity": 3}, quantities below 1 are ignored
	g.PATCH("/:id", func(c echo.Context) error {
		var body quantityRequest
		if err := c.Bind(&body); err != nil {
			return api.Error(c, http.StatusBadRequest, err.Error())
		}
		if err := d.Store.Cart.UpdateQuantity(catalogEntity.ID(c.Param("id")), body.Quantity); err != nil {
			return api.Error(c, http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, d.Store.CartView(c.Request().Context()))
	})

	// DELETE /api/cart/:id
	g.DELETE("/:id", func(c echo.Context) error {
		if err := d.Store.Cart.Remove(catalogEntity.ID(c.Param("id"))); err != nil {
			return api.Error(c, http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, d.Store.CartView(c.Request().Context()))
	})

	// DELETE /api/cart
	g.DELETE("", func(c echo.Context) error {
		if err := d.Store.Cart.Clear(); err != nil {
			return api.Error(c, http.StatusInternalServerError, err.Error())
		}
		return c.NoContent(http.StatusNoContent)
	})
}
