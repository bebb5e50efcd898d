package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/api/apitest"
)

type cartResponse struct {
	Lines []struct {
		Product struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"product"`
		Quantity int `json:"quantity"`
	} `json:"lines"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Message string  `json:"message"`
	Links   struct {
		WhatsApp string `json:"whatsapp"`
	} `json:"links"`
	Error string `json:"error"`
}

func newServer() (*echo.Echo, *api.Deps) {
	d, _ := apitest.NewDeps(nil)
	e := echo.New()
	RegisterCartRoutes(e.Group("/api"), d)
	return e, d
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (int, cartResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var res cartResponse
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("decode: %v (%s)", err, rec.Body.String())
		}
	}
	return rec.Code, res
}

func TestCart_Flow(t *testing.T) {
	e, d := newServer()

	do(t, e, http.MethodPost, "/api/cart", `{"id":"1"}`)
	code, res := do(t, e, http.MethodPost, "/api/cart", `{"id":1}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d %s", code, res.Error)
	}
	if len(res.Lines) != 1 || res.Lines[0].Quantity != 2 || res.Total != 20 || res.Count != 2 {
		t.Fatalf("cart = %+v", res)
	}
	if !strings.HasPrefix(res.Message, "My order:\n2 × Black Abaya") {
		t.Errorf("message = %q", res.Message)
	}
	if !strings.HasPrefix(res.Links.WhatsApp, "https://wa.me/201000000000?text=My%20order") {
		t.Errorf("whatsapp = %s", res.Links.WhatsApp)
	}

	_, res = do(t, e, http.MethodPatch, "/api/cart/1", `{"quantity":0}`)
	if res.Lines[0].Quantity != 2 {
		t.Error("quantity 0 must be ignored")
	}
	_, res = do(t, e, http.MethodPatch, "/api/cart/1", `{"quantity":5}`)
	if res.Total != 50 {
		t.Errorf("total = %v", res.Total)
	}

	do(t, e, http.MethodPost, "/api/cart", `{"id":"2"}`)
	_, res = do(t, e, http.MethodDelete, "/api/cart/1", "")
	if len(res.Lines) != 1 || res.Lines[0].Product.ID != "2" {
		t.Errorf("after delete = %+v", res)
	}

	if code, _ := do(t, e, http.MethodDelete, "/api/cart", ""); code != http.StatusNoContent {
		t.Errorf("clear status = %d", code)
	}
	if d.Store.Cart.Count() != 0 {
		t.Error("cart not cleared")
	}
}

func TestCart_Rejects(t *testing.T) {
	e, d := newServer()
	cases := []struct {
		body string
		code int
	}{
		{`{"id":"99"}`, http.StatusNotFound},
		{`{"id":"4"}`, http.StatusNotFound},
		{`{"id":"3"}`, http.StatusConflict},
		{`{}`, http.StatusBadRequest},
		{`{"id":`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		code, res := do(t, e, http.MethodPost, "/api/cart", tc.body)
		if code != tc.code || res.Error == "" {
			t.Errorf("POST %s = %d %q, want %d", tc.body, code, res.Error, tc.code)
		}
	}
	if d.Store.Cart.Count() != 0 {
		t.Error("rejected products reached the cart")
	}
	active := d.Feed.Active()
	if len(active) == 0 || active[len(active)-1].Message != "Sold out is currently unavailable" {
		t.Errorf("feed = %+v", active)
	}
}

func TestCart_StaleEntryHiddenNotDeleted(t *testing.T) {
	e, d := newServer()
	d.Store.Cart.Add("42", "Gone")

	_, res := do(t, e, http.MethodGet, "/api/cart", "")
	if len(res.Lines) != 0 || res.Total != 0 {
		t.Errorf("cart = %+v", res)
	}
	if !d.Store.Cart.Contains("42") {
		t.Error("stale entry deleted")
	}
}
