// Package handler implements the HTTP handlers for the Dios property register.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, address.go, listing.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Liam44/Dios-sub002/internal/domain"
)

// ListingServicer defines the operations the address and listing handlers
// depend on. Defining the interface here (in the consumer package) lets
// handler tests inject a mock without touching the database or service layer.
type ListingServicer interface {
	List(ctx context.Context) ([]domain.Address, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Address, error)
	Export(ctx context.Context, id uuid.UUID) (*domain.ZipResult, error)
	Spreadsheet(ctx context.Context, id uuid.UUID) (string, []byte, error)
}

// Server holds the dependencies of every endpoint.
type Server struct {
	listings ListingServicer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(listings ListingServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{listings: listings, log: log}
}

// Routes returns the router serving every endpoint of the API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Route("/addresses", func(r chi.Router) {
		r.Get("/", s.ListAddresses)
		r.Get("/{id}", s.GetAddress)
		r.Get("/{id}/listing", s.GetListing)
		r.Get("/{id}/listing.xlsx", s.GetListingSpreadsheet)
	})
	return r
}
