package handler

import (
	"net/http"
)

// ListAddresses handles GET /addresses.
func (s *Server) ListAddresses(w http.ResponseWriter, r *http.Request) {
	addrs, err := s.listings.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, "address", err)
		return
	}
	writeJSON(w, http.StatusOK, addrs)
}

// GetAddress handles GET /addresses/{id}, flats and tenant assignments included.
func (s *Server) GetAddress(w http.ResponseWriter, r *http.Request) {
	id, err := addressID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	a, err := s.listings.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, "address", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}
