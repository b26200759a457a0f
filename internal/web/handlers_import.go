package web

import (
	"encoding/json"
	"net/http"

	"github.com/iparr-biocorellc/backoffice/internal/core"
)

// maxImportBody caps spreadsheet import payloads at 16 MiB.
const maxImportBody = 16 << 20

// decodeRows reads a JSON array of row objects, the shape the client produces
// when it parses an uploaded spreadsheet.
func decodeRows(w http.ResponseWriter, r *http.Request) ([]core.Fields, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBody)
	var rows []core.Fields
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		http.Error(w, "invalid import payload", http.StatusBadRequest)
		return nil, false
	}
	return rows, true
}

func (s *Server) handleImportOrders(w http.ResponseWriter, r *http.Request) {
	rows, ok := decodeRows(w, r)
	if !ok {
		return
	}
	out := s.service.ImportOrders(r.Context(), rows)
	s.respondOutcome(w, r, out, routeSales, false)
}

func (s *Server) handleImportPurchases(w http.ResponseWriter, r *http.Request) {
	rows, ok := decodeRows(w, r)
	if !ok {
		return
	}
	out := s.service.ImportPurchases(r.Context(), rows)
	s.respondOutcome(w, r, out, routePurchases, false)
}

func (s *Server) handleImportRefunds(w http.ResponseWriter, r *http.Request) {
	rows, ok := decodeRows(w, r)
	if !ok {
		return
	}
	out := s.service.ImportRefunds(r.Context(), rows)
	s.respondOutcome(w, r, out, routeRefunds, false)
}
