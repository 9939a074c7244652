package app

import (
	"mlserve/internal/health"
	"mlserve/internal/middleware"
	"mlserve/internal/platform/router"
	"mlserve/internal/prediction"
)

func mountPredictionRoutes(r router.Router, handler *prediction.Handler) {
	r.Post("/predict", handler.Predict, middleware.CheckContentType)
}

func mountHealthRoutes(r router.Router, handler *health.Handler) {
	r.Get("/health", handler.Health)
	r.Get("/db-check", handler.DBCheck)
}
