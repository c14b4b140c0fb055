package httpapi

import (
	"net/http"

	"velora-be/internal/cart"
	"velora-be/internal/metrics"
	mw "velora-be/internal/middleware"
	"velora-be/internal/order"
	"velora-be/internal/wishlist"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RouterConfig wires the storefront surface.
type RouterConfig struct {
	Cart              *cart.Store
	Wishlist          *wishlist.Store
	Orders            order.Service
	Archive           order.Repository
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	cartHandler := NewCartHandler(cfg.Cart)
	wishlistHandler := NewWishlistHandler(cfg.Wishlist)
	pricingHandler := NewPricingHandler(cfg.Cart)
	checkoutHandler := NewCheckoutHandler(cfg.Cart, cfg.Orders)
	adminHandler := NewAdminHandler(cfg.Archive, cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPasswordHash)

	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(mw.RequestIDMiddleware)
	r.Use(mw.LoggingMiddleware)
	r.Use(mw.RateLimitMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"status":          "ok",
			"requests":        metrics.Requests.Load(),
			"server_errors":   metrics.ServerErrors.Load(),
			"orders_accepted": metrics.OrdersAccepted.Load(),
			"payments_opened": metrics.PaymentsOpened.Load(),
		})
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.Get)
		r.Delete("/", cartHandler.Clear)
		r.Post("/items", cartHandler.AddItem)
		r.Patch("/items", cartHandler.UpdateQuantity)
		r.Delete("/items/{productID}", cartHandler.RemoveItem)
	})

	r.Route("/wishlist", func(r chi.Router) {
		r.Get("/", wishlistHandler.Get)
		r.Delete("/", wishlistHandler.Clear)
		r.Post("/items", wishlistHandler.AddItem)
		r.Get("/items/{productID}", wishlistHandler.Contains)
		r.Delete("/items/{productID}", wishlistHandler.RemoveItem)
	})

	r.Route("/pricing", func(r chi.Router) {
		r.Get("/zones", pricingHandler.Zones)
		r.Post("/promo", pricingHandler.ValidatePromo)
		r.Post("/quote", pricingHandler.Quote)
	})

	r.Route("/checkout", func(r chi.Router) {
		r.Post("/", checkoutHandler.Submit)
		r.Post("/confirm", checkoutHandler.Confirm)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", adminHandler.Login)
		r.With(mw.AdminAuthMiddleware(cfg.JWTSecret)).Get("/orders", adminHandler.ListOrders)
	})

	return r
}
