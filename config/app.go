package config

import (
	"strconv"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool

	// Catalog documents are published next to the storefront; CatalogBaseURL is either
	// an http(s) URL or a local directory.
	CatalogBaseURL     string
	CategoriesDocument string
	ProductsDocument   string
	SettingsDocument   string
	FetchTimeout       time.Duration

	StorageDriver string
	SQLitePath    string
	StorageFile   string

	PriceLocale     string
	NotificationTTL time.Duration
	SearchDebounce  time.Duration
}

// NewConfig reads the configuration from the environment.
func NewConfig() *Config {
	return &Config{
		AppName:            GetEnv("APP_NAME", "storefront"),
		Port:               GetEnv("PORT", "8080"),
		Env:                GetEnv("APP_ENV", "development"),
		Debug:              GetEnv("DEBUG", "") == "true",
		CatalogBaseURL:     GetEnv("CATALOG_BASE_URL", "./public"),
		CategoriesDocument: GetEnv("CATALOG_CATEGORIES", "categories.json"),
		ProductsDocument:   GetEnv("CATALOG_PRODUCTS", "products.json"),
		SettingsDocument:   GetEnv("CATALOG_SETTINGS", "settings.json"),
		FetchTimeout:       time.Duration(atoiEnv("CATALOG_FETCH_TIMEOUT", 10)) * time.Second,
		StorageDriver:      GetEnv("STORAGE_DRIVER", "sqlite"),
		SQLitePath:         GetEnv("SQLITE_PATH", "storefront.db"),
		StorageFile:        GetEnv("STORAGE_FILE", "storefront-storage.json"),
		PriceLocale:        GetEnv("PRICE_LOCALE", "ar-EG"),
		NotificationTTL:    time.Duration(atoiEnv("NOTIFICATION_TTL", 3)) * time.Second,
		SearchDebounce:     time.Duration(atoiEnv("SEARCH_DEBOUNCE_MS", 300)) * time.Millisecond,
	}
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = NewConfig()
	})
}

func atoiEnv(key string, def int) int {
	v := GetEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
