package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	importHandler "github.com/lsantos-dev/moneta/internal/http/importcsv"
	networthHandler "github.com/lsantos-dev/moneta/internal/http/networth"
	reportHandler "github.com/lsantos-dev/moneta/internal/http/report"
	subscriptionHandler "github.com/lsantos-dev/moneta/internal/http/subscription"
	transactionHandler "github.com/lsantos-dev/moneta/internal/http/transaction"
	userHandler "github.com/lsantos-dev/moneta/internal/http/user"
)

func New(
	authMiddleware func(http.Handler) http.Handler,
	allowedOrigins []string,
	userV1 *userHandler.Handler,
	reportV1 *reportHandler.Handler,
	transactionV1 *transactionHandler.Handler,
	subscriptionV1 *subscriptionHandler.Handler,
	networthV1 *networthHandler.Handler,
	importV1 *importHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Route("/me", userV1.Routes)

		r.Route("/reports", func(r chi.Router) {
			reportV1.Routes(r)
			importV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionV1.Routes(r)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			subscriptionV1.Routes(r)
		})

		r.Route("/networth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			networthV1.Routes(r)
		})
	})

	return router
}
