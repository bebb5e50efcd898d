package favorites

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"storefront.GO/api/apitest"
)

func TestFavorites_Flow(t *testing.T) {
	d, docs := apitest.NewDeps(nil)
	e := echo.New()
	RegisterFavoritesRoutes(e.Group("/api"), d)

	do := func(method, target, body string) (int, map[string]interface{}) {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		var res map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &res)
		return rec.Code, res
	}

	if code, res := do(http.MethodPost, "/api/favorites", `{"id":"1"}`); code != http.StatusOK || res["count"].(float64) != 1 {
		t.Fatalf("add = %d %v", code, res)
	}
	do(http.MethodPost, "/api/favorites", `{"id":"1"}`)
	if d.Store.Favorites.Count() != 1 {
		t.Error("duplicate favorite added")
	}
	active := d.Feed.Active()
	if active[len(active)-1].Message != "Black Abaya is already in favorites" {
		t.Errorf("feed = %+v", active)
	}

	_, res := do(http.MethodPost, "/api/favorites/2/toggle", "")
	if res["favorite"] != true {
		t.Errorf("toggle on = %v", res)
	}
	_, res = do(http.MethodGet, "/api/favorites", "")
	if len(res["products"].([]interface{})) != 2 {
		t.Errorf("favorites = %v", res)
	}

	docs.Set("products.json", `[{"id":"2","name":"Silk Scarf","price":4,"mainImageUrl":"s.jpg"}]`)
	_, res = do(http.MethodGet, "/api/favorites", "")
	if len(res["products"].([]interface{})) != 1 || res["count"].(float64) != 2 {
		t.Errorf("favorites after catalog change = %v", res)
	}

	_, res = do(http.MethodDelete, "/api/favorites/1", "")
	if res["count"].(float64) != 1 {
		t.Errorf("after delete = %v", res)
	}
	if code, _ := do(http.MethodPost, "/api/favorites/77/toggle", ""); code != http.StatusNotFound {
		t.Errorf("toggle unknown = %d", code)
	}
}
