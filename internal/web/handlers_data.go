package web

import (
	"net/http"

	"github.com/iparr-biocorellc/backoffice/internal/core"
)

// serveListing writes a listing response with an ETag derived from the view
// cache, so clients holding a fresh copy get a 304 instead of a re-query.
func serveListing[T any](s *Server, w http.ResponseWriter, r *http.Request, route string, load func() ([]T, error)) {
	etag := s.views.ETag(route)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	items, err := load()
	if err != nil {
		http.Error(w, "failed to load data", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []T{}
	}

	w.Header().Set("ETag", etag)
	writeJSON(w, r, http.StatusOK, items)
}

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	serveListing(s, w, r, routeInvoices, func() ([]core.Invoice, error) {
		return s.service.ListInvoices(r.Context())
	})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	serveListing(s, w, r, routeSales, func() ([]core.Order, error) {
		return s.service.ListOrders(r.Context())
	})
}

func (s *Server) handleListPurchases(w http.ResponseWriter, r *http.Request) {
	serveListing(s, w, r, routePurchases, func() ([]core.Purchase, error) {
		return s.service.ListPurchases(r.Context())
	})
}

func (s *Server) handleListRefunds(w http.ResponseWriter, r *http.Request) {
	serveListing(s, w, r, routeRefunds, func() ([]core.Refund, error) {
		return s.service.ListRefunds(r.Context())
	})
}

func (s *Server) handleListLabels(w http.ResponseWriter, r *http.Request) {
	serveListing(s, w, r, routeLabels, func() ([]core.Label, error) {
		return s.service.ListLabels(r.Context())
	})
}
