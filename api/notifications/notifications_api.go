package notifications

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/core/notify"
)

func init() {
	api.RegisterModule(RegisterNotificationRoutes)
}

// RegisterNotificationRoutes exposes the toasts that are still visible.
func RegisterNotificationRoutes(g *echo.Group, d *api.Deps) {
	// GET /api/notifications
	g.GET("/notifications", func(c echo.Context) error {
		active := []notify.Notification{}
		if d.Feed != nil {
			active = d.Feed.Active()
		}
		cartCount, favCount := d.Store.Counts()
		return c.JSON(http.StatusOK, echo.Map{
			"notifications":   active,
			"cart_count":      cartCount,
			"favorites_count": favCount,
		})
	})

	// DELETE /api/notifications
	g.DELETE("/notifications", func(c echo.Context) error {
		if d.Feed != nil {
			d.Feed.Clear()
		}
		return c.NoContent(http.StatusNoContent)
	})
}
