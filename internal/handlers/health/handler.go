package health

import (
	"lodge/infras/postgres"
	"lodge/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{
		db: db,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports readiness based on database connectivity.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if handler.db == nil || handler.db.Read == nil || handler.db.Read.PingContext(r.Context()) != nil {
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
