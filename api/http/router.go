package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yohanpasi/storefront/api/http/handlers"
	"github.com/yohanpasi/storefront/pkg/security/jwt"
)

// scopes is the route-to-required-role table. Every mount point listed here
// is gated by the auth middleware followed by its scope's role check; routes
// outside the table carry no role restriction.
var scopes = map[string]jwt.Scope{
	"/admin": jwt.ScopeAdmin,
	"/shop":  jwt.ScopeShop,
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, product *handlers.ProductHandler,
	upload *handlers.UploadHandler, health *handlers.HealthHandler, authMW fiber.Handler) {

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")

	a := api.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Post("/logout", auth.Logout)
	a.Get("/check-auth", authMW, auth.CheckAuth)

	// Admin console: product CRUD and image upload
	admin := api.Group("/admin", authMW, jwt.RequireScope(scopes["/admin"]))
	ap := admin.Group("/product")
	ap.Post("/upload-image", upload.Image)
	ap.Post("/add", product.Add)
	ap.Get("/get", product.FetchAll)
	ap.Put("/edit/:id", product.Edit)
	ap.Delete("/delete/:id", product.Delete)

	// Shop: read-only catalog for shopper accounts
	shop := api.Group("/shop", authMW, jwt.RequireScope(scopes["/shop"]))
	shop.Get("/products/get", product.FetchAll)
}
