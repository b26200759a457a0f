package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/iparr-biocorellc/backoffice/internal/core"
	"github.com/iparr-biocorellc/backoffice/internal/logging"
)

// formFields converts a submitted form into the field map core validates.
// Only the first value of each key is kept, matching how the forms submit.
func formFields(r *http.Request) (core.Fields, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	fields := make(core.Fields, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields, nil
}

// respondOutcome writes an outcome as JSON. Successful mutations invalidate
// the listing route they touched, and navigating mutations additionally set
// HX-Redirect so the client moves back to that listing.
func (s *Server) respondOutcome(w http.ResponseWriter, r *http.Request, out core.Outcome, route string, redirect bool) {
	status := http.StatusOK
	switch {
	case out.OK():
		s.views.Invalidate(route)
		if redirect {
			w.Header().Set("HX-Redirect", route)
		}
	case len(out.Errors) > 0:
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}
	writeJSON(w, r, status, out)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("failed to encode response", "error", err)
	}
}

func (s *Server) badForm(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Warn("unparseable form submission", "error", err)
	http.Error(w, "invalid form data", http.StatusBadRequest)
}

func (s *Server) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	fields, err := formFields(r)
	if err != nil {
		s.badForm(w, r, err)
		return
	}
	out := s.service.CreateInvoice(r.Context(), fields)
	s.respondOutcome(w, r, out, routeInvoices, true)
}

func (s *Server) handleUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	fields, err := formFields(r)
	if err != nil {
		s.badForm(w, r, err)
		return
	}
	out := s.service.UpdateInvoice(r.Context(), chi.URLParam(r, "id"), fields)
	s.respondOutcome(w, r, out, routeInvoices, true)
}

func (s *Server) handleDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	out := s.service.DeleteInvoice(r.Context(), chi.URLParam(r, "id"))
	s.respondOutcome(w, r, out, routeInvoices, false)
}

func (s *Server) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	fields, err := formFields(r)
	if err != nil {
		s.badForm(w, r, err)
		return
	}
	out := s.service.UpdateOrder(r.Context(), chi.URLParam(r, "orderNumber"), fields)
	s.respondOutcome(w, r, out, routeSales, true)
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	out := s.service.DeleteOrder(r.Context(), chi.URLParam(r, "orderNumber"))
	s.respondOutcome(w, r, out, routeSales, false)
}

func (s *Server) handleUpdatePurchase(w http.ResponseWriter, r *http.Request) {
	fields, err := formFields(r)
	if err != nil {
		s.badForm(w, r, err)
		return
	}
	out := s.service.UpdatePurchase(r.Context(), chi.URLParam(r, "itemID"), fields)
	s.respondOutcome(w, r, out, routePurchases, true)
}

func (s *Server) handleDeletePurchase(w http.ResponseWriter, r *http.Request) {
	out := s.service.DeletePurchase(r.Context(), chi.URLParam(r, "itemID"))
	s.respondOutcome(w, r, out, routePurchases, false)
}

func (s *Server) handleCreateLabel(w http.ResponseWriter, r *http.Request) {
	fields, err := formFields(r)
	if err != nil {
		s.badForm(w, r, err)
		return
	}
	out := s.service.CreateLabel(r.Context(), fields)
	s.respondOutcome(w, r, out, routeLabels, true)
}

func (s *Server) handleUpdateLabel(w http.ResponseWriter, r *http.Request) {
	fields, err := formFields(r)
	if err != nil {
		s.badForm(w, r, err)
		return
	}
	out := s.service.UpdateLabel(r.Context(), chi.URLParam(r, "trackingNumber"), fields)
	s.respondOutcome(w, r, out, routeLabels, true)
}

func (s *Server) handleDeleteLabel(w http.ResponseWriter, r *http.Request) {
	out := s.service.DeleteLabel(r.Context(), chi.URLParam(r, "trackingNumber"))
	s.respondOutcome(w, r, out, routeLabels, false)
}
