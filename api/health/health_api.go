package health

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
)

func init() {
	api.RegisterGET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
}
