package core

import "context"

// fakeStore is an in-memory Store for service tests. Insert failures are
// driven by insertErr and failAfter: once failAfter inserts have succeeded,
// every further insert returns insertErr.
type fakeStore struct {
	invoices  []Invoice
	orders    []Order
	purchases []Purchase
	refunds   []Refund
	labels    []Label

	deleted []string

	insertErr error
	failAfter int
	inserted  int

	updateErr error
	deleteErr error
	listErr   error
}

func (f *fakeStore) insertGate() error {
	if f.insertErr != nil && f.inserted >= f.failAfter {
		return f.insertErr
	}
	f.inserted++
	return nil
}

func (f *fakeStore) InsertInvoice(_ context.Context, inv Invoice) error {
	if err := f.insertGate(); err != nil {
		return err
	}
	f.invoices = append(f.invoices, inv)
	return nil
}

func (f *fakeStore) UpdateInvoice(_ context.Context, inv Invoice) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.invoices = append(f.invoices, inv)
	return nil
}

func (f *fakeStore) DeleteInvoice(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) ListInvoices(context.Context) ([]Invoice, error) {
	return f.invoices, f.listErr
}

func (f *fakeStore) InsertOrder(_ context.Context, o Order) error {
	if err := f.insertGate(); err != nil {
		return err
	}
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeStore) UpdateOrder(_ context.Context, o Order) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeStore) DeleteOrder(_ context.Context, orderNumber string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, orderNumber)
	return nil
}

func (f *fakeStore) ListOrders(context.Context) ([]Order, error) {
	return f.orders, f.listErr
}

func (f *fakeStore) InsertPurchase(_ context.Context, p Purchase) error {
	if err := f.insertGate(); err != nil {
		return err
	}
	f.purchases = append(f.purchases, p)
	return nil
}

func (f *fakeStore) UpdatePurchase(_ context.Context, p Purchase) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.purchases = append(f.purchases, p)
	return nil
}

func (f *fakeStore) DeletePurchase(_ context.Context, itemID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, itemID)
	return nil
}

func (f *fakeStore) ListPurchases(context.Context) ([]Purchase, error) {
	return f.purchases, f.listErr
}

func (f *fakeStore) InsertRefund(_ context.Context, r Refund) error {
	if err := f.insertGate(); err != nil {
		return err
	}
	f.refunds = append(f.refunds, r)
	return nil
}

func (f *fakeStore) ListRefunds(context.Context) ([]Refund, error) {
	return f.refunds, f.listErr
}

func (f *fakeStore) InsertLabel(_ context.Context, l Label) error {
	if err := f.insertGate(); err != nil {
		return err
	}
	f.labels = append(f.labels, l)
	return nil
}

func (f *fakeStore) UpdateLabel(_ context.Context, l Label) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.labels = append(f.labels, l)
	return nil
}

func (f *fakeStore) DeleteLabel(_ context.Context, trackingNumber string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, trackingNumber)
	return nil
}

func (f *fakeStore) ListLabels(context.Context) ([]Label, error) {
	return f.labels, f.listErr
}
