package jobs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"storefront.GO/config"
	"storefront.GO/cron"
	"storefront.GO/service/catalog"
)

func writeDocs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func testConfig() *config.Config {
	return &config.Config{
		CategoriesDocument: "categories.json",
		ProductsDocument:   "products.json",
		SettingsDocument:   "settings.json",
	}
}

func TestCheckCatalog(t *testing.T) {
	dir := writeDocs(t, map[string]string{
		"categories.json": `[{"id":1,"name":"A"}]`,
		"products.json":   `[{"id":1,"name":"A","price":1,"mainImageUrl":"a"},{"id":2,"name":"B","price":1,"mainImageUrl":"b","isAvailable":false},{"id":3}]`,
		"settings.json":   `{"currency":"EGP"}`,
	})
	r := CheckCatalog(context.Background(), catalog.NewFetcher(dir, 0), testConfig())
	if !r.OK() {
		t.Fatalf("errors: %v", r.Errors)
	}
	if r.Categories != 1 || r.Products != 2 || r.Unavailable != 1 {
		t.Errorf("report = %+v", r)
	}
}

func TestCheckCatalog_Failures(t *testing.T) {
	dir := writeDocs(t, map[string]string{"products.json": `{}`})
	r := CheckCatalog(context.Background(), catalog.NewFetcher(dir, 0), testConfig())
	if len(r.Errors) != 3 {
		t.Fatalf("errors = %v, want 3", r.Errors)
	}
	if !errors.Is(r.Errors[1], catalog.ErrEmpty) {
		t.Errorf("products error = %v", r.Errors[1])
	}
}

func TestRegistered(t *testing.T) {
	j, ok := cron.Jobs()["catalogcheck"]
	if !ok || j.Schedule != CatalogCheckSchedule {
		t.Errorf("catalogcheck job = %+v, %v", j, ok)
	}
}
