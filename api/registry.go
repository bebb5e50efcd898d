package api

import (
	"sync"

	"github.com/labstack/echo/v4"

	"storefront.GO/core/notify"
	"storefront.GO/service/storefront"
)

// Deps is what route modules are built from.
type Deps struct {
	Store *storefront.Service
	Feed  *notify.Feed
}

var (
	mu            sync.Mutex
	modules       []ModuleFunc
	routes        []RouteFunc
	modulesLocked bool
	routesLocked  bool
)

// --- /api group modules ---

// ModuleFunc registers routes on the /api group.
type ModuleFunc func(g *echo.Group, d *Deps)

// RegisterModule registers an API module. Call from init() in API packages.
func RegisterModule(fn ModuleFunc) {
	mu.Lock()
	defer mu.Unlock()
	if modulesLocked {
		panic("api/registry: API modules locked (register only during init)")
	}
	modules = append(modules, fn)
}

// ApplyModules calls all registered /api modules. Locks the registry.
func ApplyModules(g *echo.Group, d *Deps) {
	mu.Lock()
	list := append([]ModuleFunc(nil), modules...)
	modulesLocked = true
	mu.Unlock()
	for _, fn := range list {
		fn(g, d)
	}
}

// --- Root-level routes (health, HTML, GraphQL) ---

// RouteFunc registers routes on the root Echo instance.
type RouteFunc func(e *echo.Echo, d *Deps)

// RegisterRoute registers a root-level route module. Call from init().
func RegisterRoute(fn RouteFunc) {
	mu.Lock()
	defer mu.Unlock()
	if routesLocked {
		panic("api/registry: routes locked (register only during init)")
	}
	routes = append(routes, fn)
}

// RegisterGET is shorthand for registering a simple GET route on root.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *Deps) {
		e.GET(path, handler)
	})
}

// ApplyRoutes calls all registered root-level routes. Locks the registry.
func ApplyRoutes(e *echo.Echo, d *Deps) {
	mu.Lock()
	list := append([]RouteFunc(nil), routes...)
	routesLocked = true
	mu.Unlock()
	for _, fn := range list {
		fn(e, d)
	}
}

// Error is the JSON body of every failed request.
func Error(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"error": msg})
}
