// Package server exposes the ledger operations over HTTP.
//
// The route names mirror the public API this service has always served,
// including /getExpensese, which is spelled the way clients already call it.
package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mmynk/splitledger/internal/middleware"
)

// NewRouter builds the chi router with logging, metrics and CORS middleware
// and all ledger routes registered.
func NewRouter(h *Handler) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(middleware.Logging)
	mux.Use(middleware.Metrics)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	mux.Post("/addUsers", h.CreateUser)
	mux.Post("/addExpenses", h.CreateExpense)
	mux.Post("/expenses/{expenseName}/users", h.AddParticipants)
	mux.Get("/users/{userName}/expense-shares", h.UserBalances)

	mux.Get("/getUsers", h.ListUsers)
	mux.Get("/getExpensese", h.ListExpenses)
	mux.Get("/getExpenseUser", h.ListParticipants)
	mux.Get("/getExpenseShare", h.ListShares)

	mux.Method("GET", "/metrics", middleware.MetricsHandler())

	// Share recording posts directly to /{expenseName}; chi prefers the
	// static routes above, so only unmatched names land here.
	mux.Post("/{expenseName}", h.SetShares)

	return mux
}
