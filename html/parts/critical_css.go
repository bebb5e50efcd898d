package parts

import (
	"log"
	"os"
	"time"

	_ "embed"

	"storefront.GO/core/cache"
)

//go:embed storefront.css
var defaultCSS string

// CriticalCSSPath is the stylesheet inlined into every page when it exists.
var CriticalCSSPath = "assets/storefront.css"

const criticalCSSKey = "html:critical-css"

// GetCriticalCSS reads the critical CSS file, falling back to the built-in stylesheet.
func GetCriticalCSS() string {
	css, err := os.ReadFile(CriticalCSSPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println("Critical CSS error:", err)
		}
		return defaultCSS
	}
	return string(css)
}

// GetCriticalCSSCached is GetCriticalCSS cached for a minute.
func GetCriticalCSSCached() string {
	c := cache.GetInstance()
	if css, ok := c.GetOrDefault(criticalCSSKey, nil).(string); ok {
		return css
	}
	css := GetCriticalCSS()
	c.Set(criticalCSSKey, css, time.Minute, []string{"html"})
	return css
}
