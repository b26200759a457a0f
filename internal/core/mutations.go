package core

// mutations.go implements the single-record create/update/delete operations.
// Each one validates the submitted field set (deletes skip validation and
// take only the primary key), issues exactly one statement, and converts any
// persistence failure to a generic Outcome. Affected-row counts are not
// checked: deleting a key that does not exist still reports success.

import (
	"context"

	"github.com/google/uuid"
)

// CreateInvoice validates a new-invoice submission and inserts it. The id is
// generated, the date is stamped with today, and the dollar amount is stored
// as integer cents.
func (s *Service) CreateInvoice(ctx context.Context, form Fields) Outcome {
	vals, ferrs := Validate(form, invoiceFields())
	if ferrs != nil {
		return Invalid(ferrs, "Missing Fields. Failed to Create Invoice.")
	}

	inv := Invoice{
		ID:         uuid.NewString(),
		CustomerID: vals.str("customerId"),
		Amount:     ToCents(vals.num("amount")),
		Status:     vals.str("status"),
		Date:       Today(),
	}

	if err := s.store.InsertInvoice(ctx, inv); err != nil {
		logStoreError("create invoice", err)
		return Failure("Database Error: Failed to Create Invoice.")
	}
	return Success("Created Invoice.")
}

// UpdateInvoice validates an invoice edit and updates the row keyed by id.
// The id and date never change.
func (s *Service) UpdateInvoice(ctx context.Context, id string, form Fields) Outcome {
	vals, ferrs := Validate(form, invoiceFields())
	if ferrs != nil {
		return Invalid(ferrs, "Missing Fields. Failed to Update Invoice.")
	}

	inv := Invoice{
		ID:         id,
		CustomerID: vals.str("customerId"),
		Amount:     ToCents(vals.num("amount")),
		Status:     vals.str("status"),
	}

	if err := s.store.UpdateInvoice(ctx, inv); err != nil {
		logStoreError("update invoice", err)
		return Failure("Database Error: Failed to Update Invoice.")
	}
	return Success("Updated Invoice.")
}

// DeleteInvoice removes an invoice by id.
func (s *Service) DeleteInvoice(ctx context.Context, id string) Outcome {
	if err := s.store.DeleteInvoice(ctx, id); err != nil {
		logStoreError("delete invoice", err)
		return Failure("Database Error: Failed to Delete Invoice.")
	}
	return Success("Deleted Invoice.")
}

// UpdateOrder validates an order edit and updates the row keyed by order
// number.
func (s *Service) UpdateOrder(ctx context.Context, orderNumber string, form Fields) Outcome {
	vals, ferrs := Validate(form, omitFields(orderFields(), "order_number"))
	if ferrs != nil {
		return Invalid(ferrs, "Missing or Invalid Fields. Failed to Update Order.")
	}

	o := Order{
		OrderNumber:      orderNumber,
		Date:             vals.str("date"),
		ItemTitle:        vals.str("item_title"),
		ItemID:           vals.str("item_id"),
		BuyerUsername:    vals.str("buyer_username"),
		BuyerName:        vals.str("buyer_name"),
		City:             vals.str("city"),
		State:            vals.str("state"),
		Zip:              vals.str("zip"),
		Quantity:         vals.intval("quantity"),
		ItemSubtotal:     vals.num("item_subtotal"),
		ShippingHandling: vals.num("shipping_handling"),
		EbayCollectedTax: vals.num("ebay_collected_tax"),
		FvFixed:          vals.num("fv_fixed"),
		FvVariable:       vals.num("fv_variable"),
		InternationalFee: vals.num("international_fee"),
		GrossAmount:      vals.num("gross_amount"),
		NetAmount:        vals.num("net_amount"),
	}

	if err := s.store.UpdateOrder(ctx, o); err != nil {
		logStoreError("update order", err)
		return Failure("Database Error: Failed to Update Order.")
	}
	return Success("Updated Order.")
}

// DeleteOrder removes an order by order number.
func (s *Service) DeleteOrder(ctx context.Context, orderNumber string) Outcome {
	if err := s.store.DeleteOrder(ctx, orderNumber); err != nil {
		logStoreError("delete order", err)
		return Failure("Database Error: Failed to Delete Order.")
	}
	return Success("Deleted Order.")
}

// UpdatePurchase validates a purchase edit and updates the row keyed by item
// ID.
func (s *Service) UpdatePurchase(ctx context.Context, itemID string, form Fields) Outcome {
	vals, ferrs := Validate(form, omitFields(purchaseFields(), "item_id"))
	if ferrs != nil {
		return Invalid(ferrs, "Missing Fields. Failed to Update Purchase.")
	}

	p := Purchase{
		ItemID:          itemID,
		Date:            vals.str("date"),
		Platform:        vals.str("platform"),
		SellerUsername:  vals.str("seller_username"),
		ListingTitle:    vals.str("listing_title"),
		IndividualPrice: vals.num("individual_price"),
		Quantity:        vals.intval("quantity"),
		ShippingPrice:   vals.num("shipping_price"),
		Tax:             vals.num("tax"),
		Total:           vals.num("total"),
		AmountRefunded:  vals.num("amount_refunded"),
	}

	if err := s.store.UpdatePurchase(ctx, p); err != nil {
		logStoreError("update purchase", err)
		return Failure("Database Error: Failed to Update Purchase.")
	}
	return Success("Updated Purchase.")
}

// DeletePurchase removes a purchase by item ID.
func (s *Service) DeletePurchase(ctx context.Context, itemID string) Outcome {
	if err := s.store.DeletePurchase(ctx, itemID); err != nil {
		logStoreError("delete purchase", err)
		return Failure("Database Error: Failed to Delete Purchase.")
	}
	return Success("Deleted Purchase.")
}

// CreateLabel validates a new shipping label and inserts it.
func (s *Service) CreateLabel(ctx context.Context, form Fields) Outcome {
	vals, ferrs := Validate(form, labelFields())
	if ferrs != nil {
		return Invalid(ferrs, "Missing Fields. Failed to Create Label.")
	}

	if err := s.store.InsertLabel(ctx, labelFromFields(vals, vals.str("tracking_number"))); err != nil {
		logStoreError("create label", err)
		return Failure("Database Error: Failed to Create Label.")
	}
	return Success("Created Label.")
}

// UpdateLabel validates a label edit and updates the row keyed by tracking
// number.
func (s *Service) UpdateLabel(ctx context.Context, trackingNumber string, form Fields) Outcome {
	vals, ferrs := Validate(form, omitFields(labelFields(), "tracking_number"))
	if ferrs != nil {
		return Invalid(ferrs, "Missing Fields. Failed to Update Label.")
	}

	if err := s.store.UpdateLabel(ctx, labelFromFields(vals, trackingNumber)); err != nil {
		logStoreError("update label", err)
		return Failure("Database Error: Failed to Update Label.")
	}
	return Success("Updated Label.")
}

// DeleteLabel removes a label by tracking number.
func (s *Service) DeleteLabel(ctx context.Context, trackingNumber string) Outcome {
	if err := s.store.DeleteLabel(ctx, trackingNumber); err != nil {
		logStoreError("delete label", err)
		return Failure("Database Error: Failed to Delete Label.")
	}
	return Success("Deleted Label.")
}

func labelFromFields(vals Fields, trackingNumber string) Label {
	return Label{
		TrackingNumber:  trackingNumber,
		OrderNumber:     vals.str("order_number"),
		ShippingService: vals.str("shipping_service"),
		Cost:            vals.num("cost"),
		Date:            vals.str("date"),
		BuyerUsername:   vals.str("buyer_username"),
		Notes:           vals.str("notes"),
	}
}
