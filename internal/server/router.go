package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"pizzeria/internal/auth"
	"pizzeria/internal/catalog"
	"pizzeria/internal/config"
	"pizzeria/internal/message"
	ordercontroller "pizzeria/internal/order/controller"
)

// NewRouter mounts the public and admin surfaces. Privileged routes go
// through the admin guard before their handlers; public routes never do.
func NewRouter(
	cfg *config.Config,
	authModule *auth.Module,
	catalogCtrl *catalog.Controller,
	orderCtrl *ordercontroller.OrderController,
	messageCtrl *message.Controller,
	logger *zap.Logger,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/health", handleHealth)

	router.Route("/admin", func(r chi.Router) {
		r.Post("/login", authModule.Controller.HandleLogin)
		r.Post("/logout", authModule.Controller.HandleLogout)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/pizzas", catalogCtrl.HandleList)
		r.Post("/orders", orderCtrl.HandleCreate)
		r.Post("/orders/{id}/payment", orderCtrl.HandleConfirmPayment)
		r.Post("/messages", messageCtrl.HandleCreate)

		r.Group(func(r chi.Router) {
			r.Use(authModule.Guard)

			r.Post("/pizzas", catalogCtrl.HandleCreate)
			r.Delete("/pizzas/{id}", catalogCtrl.HandleDelete)

			r.Get("/orders", orderCtrl.HandleList)
			r.Patch("/orders/{id}", orderCtrl.HandleUpdatePayment)
			r.Delete("/orders/{id}", orderCtrl.HandleDelete)

			r.Get("/messages", messageCtrl.HandleList)
			r.Delete("/messages/{id}", messageCtrl.HandleDelete)
		})
	})

	return router
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
