package handler

import (
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Liam44/Dios-sub002/internal/sheet"
)

// GetListing handles GET /addresses/{id}/listing.
// It downloads the zip of the three tenant listings. When there is nothing to
// export, or the archive could not be built or carries no content, it
// redirects back to the address.
func (s *Server) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := addressID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	result, err := s.listings.Export(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, "address", err)
		return
	}
	if result == nil || result.IsNeutral() || result.Content == nil {
		redirectToAddress(w, r, id)
		return
	}

	setAttachment(w, result.FileName, result.ContentType, result.Size())
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	io.Copy(w, result.Content)
}

// GetListingSpreadsheet handles GET /addresses/{id}/listing.xlsx.
func (s *Server) GetListingSpreadsheet(w http.ResponseWriter, r *http.Request) {
	id, err := addressID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	name, data, err := s.listings.Spreadsheet(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, "address", err)
		return
	}

	setAttachment(w, name, sheet.ContentType, int64(len(data)))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(data)
}

func setAttachment(w http.ResponseWriter, fileName, contentType string, size int64) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.FormatInt(size, 10))
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
}

func redirectToAddress(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	http.Redirect(w, r, "/addresses/"+id.String(), http.StatusSeeOther)
}
