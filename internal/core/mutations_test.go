package core

import (
	"context"
	"errors"
	"testing"
)

func TestCreateInvoice(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	out := svc.CreateInvoice(context.Background(), Fields{
		"customerId": "cust-1",
		"amount":     "19.99",
		"status":     "paid",
	})

	if !out.OK() {
		t.Fatalf("create failed: %+v", out)
	}
	if out.Message != "Created Invoice." {
		t.Errorf("message = %q", out.Message)
	}
	if len(store.invoices) != 1 {
		t.Fatalf("inserted %d invoices, want 1", len(store.invoices))
	}

	inv := store.invoices[0]
	if inv.ID == "" {
		t.Error("id was not generated")
	}
	if inv.Amount != 1999 {
		t.Errorf("amount = %d cents, want 1999", inv.Amount)
	}
	if inv.Status != "paid" {
		t.Errorf("status = %q, want paid", inv.Status)
	}
	if inv.Date != Today() {
		t.Errorf("date = %q, want today", inv.Date)
	}
}

func TestCreateInvoiceInvalidForm(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	out := svc.CreateInvoice(context.Background(), Fields{})

	if out.OK() {
		t.Fatal("expected failure")
	}
	if out.Message != "Missing Fields. Failed to Create Invoice." {
		t.Errorf("message = %q", out.Message)
	}
	if len(out.Errors) != 3 {
		t.Errorf("expected 3 field errors, got %v", out.Errors)
	}
	if len(store.invoices) != 0 {
		t.Errorf("inserted %d invoices, want 0", len(store.invoices))
	}
}

func TestCreateInvoiceStoreError(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("connection refused")}
	svc := NewService(store)

	out := svc.CreateInvoice(context.Background(), Fields{
		"customerId": "cust-1",
		"amount":     "5",
		"status":     "pending",
	})

	if out.OK() {
		t.Fatal("expected failure")
	}
	if out.Message != "Database Error: Failed to Create Invoice." {
		t.Errorf("message = %q", out.Message)
	}
	if len(out.Errors) != 0 {
		t.Errorf("expected no field errors, got %v", out.Errors)
	}
}

func TestUpdateOrderKeysOnPathNotForm(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	form := Fields{
		"date":               "2023-06-15",
		"item_title":         "Widget",
		"item_id":            "111",
		"buyer_username":     "buyer1",
		"buyer_name":         "Jane Doe",
		"city":               "Atlanta",
		"state":              "GA",
		"zip":                "30301",
		"quantity":           "2",
		"item_subtotal":      "10.00",
		"shipping_handling":  "3.00",
		"ebay_collected_tax": "0.80",
		"fv_fixed":           "0.30",
		"fv_variable":        "1.20",
		"international_fee":  "0",
		"gross_amount":       "13.80",
		"net_amount":         "12.30",
	}

	out := svc.UpdateOrder(context.Background(), "12-34567-89012", form)

	if !out.OK() {
		t.Fatalf("update failed: %+v", out)
	}
	if out.Message != "Updated Order." {
		t.Errorf("message = %q", out.Message)
	}
	if len(store.orders) != 1 || store.orders[0].OrderNumber != "12-34567-89012" {
		t.Fatalf("stored order = %+v, want order number from path", store.orders)
	}
	if store.orders[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", store.orders[0].Quantity)
	}
}

func TestUpdateOrderInvalidForm(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	out := svc.UpdateOrder(context.Background(), "12-34567-89012", Fields{
		"date": "2023-06-15",
	})

	if out.OK() {
		t.Fatal("expected failure")
	}
	if out.Message != "Missing or Invalid Fields. Failed to Update Order." {
		t.Errorf("message = %q", out.Message)
	}
	// The order number comes from the path, so it must never be a form error.
	if _, present := out.Errors["order_number"]; present {
		t.Errorf("order_number should not be validated: %v", out.Errors)
	}
}

func TestDeleteInvoice(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	out := svc.DeleteInvoice(context.Background(), "inv-404")

	// Affected rows are not checked: deleting an absent id still succeeds.
	if !out.OK() {
		t.Fatalf("delete failed: %+v", out)
	}
	if out.Message != "Deleted Invoice." {
		t.Errorf("message = %q", out.Message)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "inv-404" {
		t.Errorf("deleted = %v, want [inv-404]", store.deleted)
	}
}

func TestDeleteOrderStoreError(t *testing.T) {
	store := &fakeStore{deleteErr: errors.New("connection refused")}
	svc := NewService(store)

	out := svc.DeleteOrder(context.Background(), "12-34567-89012")

	if out.OK() {
		t.Fatal("expected failure")
	}
	if out.Message != "Database Error: Failed to Delete Order." {
		t.Errorf("message = %q", out.Message)
	}
}

func TestCreateLabel(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	out := svc.CreateLabel(context.Background(), Fields{
		"tracking_number":  "9400100000000000000000",
		"order_number":     "12-34567-89012",
		"shipping_service": "USPS Ground Advantage",
		"cost":             "4.50",
		"date":             "2023-06-15",
		"buyer_username":   "buyer1",
		"notes":            "",
	})

	if !out.OK() {
		t.Fatalf("create failed: %+v", out)
	}
	if len(store.labels) != 1 {
		t.Fatalf("inserted %d labels, want 1", len(store.labels))
	}
	if store.labels[0].Cost != 4.5 {
		t.Errorf("cost = %v, want 4.5", store.labels[0].Cost)
	}
}

func TestUpdateLabelKeysOnTrackingNumber(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	out := svc.UpdateLabel(context.Background(), "9400100000000000000000", Fields{
		"order_number":     "12-34567-89012",
		"shipping_service": "USPS Priority",
		"cost":             "8.75",
		"date":             "2023-06-16",
		"buyer_username":   "buyer1",
		"notes":            "reshipped",
	})

	if !out.OK() {
		t.Fatalf("update failed: %+v", out)
	}
	if len(store.labels) != 1 || store.labels[0].TrackingNumber != "9400100000000000000000" {
		t.Fatalf("stored label = %+v, want tracking number from path", store.labels)
	}
}

func TestUpdatePurchaseInvalidForm(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	out := svc.UpdatePurchase(context.Background(), "AAA-1", Fields{
		"date":     "2023-06-15",
		"quantity": "1.5",
	})

	if out.OK() {
		t.Fatal("expected failure")
	}
	if out.Message != "Missing Fields. Failed to Update Purchase." {
		t.Errorf("message = %q", out.Message)
	}
	if len(out.Errors["quantity"]) != 1 {
		t.Errorf("expected a quantity error, got %v", out.Errors)
	}
}
