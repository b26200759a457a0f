package core

import "context"

// Listing reads pass straight through to the store. Unlike mutations they
// surface errors to the caller, which decides how to render a failed view.

func (s *Service) ListInvoices(ctx context.Context) ([]Invoice, error) {
	invoices, err := s.store.ListInvoices(ctx)
	if err != nil {
		logStoreError("list invoices", err)
		return nil, err
	}
	return invoices, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]Order, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		logStoreError("list orders", err)
		return nil, err
	}
	return orders, nil
}

func (s *Service) ListPurchases(ctx context.Context) ([]Purchase, error) {
	purchases, err := s.store.ListPurchases(ctx)
	if err != nil {
		logStoreError("list purchases", err)
		return nil, err
	}
	return purchases, nil
}

func (s *Service) ListRefunds(ctx context.Context) ([]Refund, error) {
	refunds, err := s.store.ListRefunds(ctx)
	if err != nil {
		logStoreError("list refunds", err)
		return nil, err
	}
	return refunds, nil
}

func (s *Service) ListLabels(ctx context.Context) ([]Label, error) {
	labels, err := s.store.ListLabels(ctx)
	if err != nil {
		logStoreError("list labels", err)
		return nil, err
	}
	return labels, nil
}
