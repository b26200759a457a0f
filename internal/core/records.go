package core

// records.go declares the field specs for the five record kinds and registers
// the three bulk-importable ones. Update specs omit the primary key: it is
// immutable after creation and updates key on it instead.

import "context"

var zero = 0.0

func invoiceFields() []FieldSpec {
	return []FieldSpec{
		{Name: "customerId", Type: FieldText, Message: "Please select a customer."},
		{Name: "amount", Type: FieldNumeric, GreaterThan: &zero, Message: "Please enter an amount greater than $0."},
		{Name: "status", Type: FieldEnum, EnumValues: []string{"pending", "paid"}, Message: "Please select an invoice status."},
	}
}

func orderFields() []FieldSpec {
	return []FieldSpec{
		{Name: "order_number", Type: FieldText, Message: "Please enter a valid order number."},
		{Name: "date", Type: FieldDate, Message: "Please enter a valid date."},
		{Name: "item_title", Type: FieldText, Message: "Please enter a valid item title."},
		{Name: "item_id", Type: FieldText, Message: "Please enter a valid item ID."},
		{Name: "buyer_username", Type: FieldText, Message: "Please enter a valid buyer username."},
		{Name: "buyer_name", Type: FieldText, Message: "Please enter a valid buyer name."},
		{Name: "city", Type: FieldText, Message: "Please enter a valid city."},
		{Name: "state", Type: FieldText, Message: "Please enter a valid state."},
		{Name: "zip", Type: FieldText, Message: "Please enter a valid ZIP code."},
		{Name: "quantity", Type: FieldInt, Message: "Please enter a valid quantity."},
		{Name: "item_subtotal", Type: FieldNumeric, Message: "Please enter a valid item subtotal."},
		{Name: "shipping_handling", Type: FieldNumeric, Message: "Please enter a valid shipping and handling cost."},
		{Name: "ebay_collected_tax", Type: FieldNumeric, Message: "Please enter a valid eBay collected tax."},
		{Name: "fv_fixed", Type: FieldNumeric, Message: "Please enter a valid fixed final value fee."},
		{Name: "fv_variable", Type: FieldNumeric, Message: "Please enter a valid variable final value fee."},
		{Name: "international_fee", Type: FieldNumeric, Message: "Please enter a valid international fee."},
		{Name: "gross_amount", Type: FieldNumeric, Message: "Please enter a valid gross amount."},
		{Name: "net_amount", Type: FieldNumeric, Message: "Please enter a valid net amount."},
	}
}

func purchaseFields() []FieldSpec {
	return []FieldSpec{
		{Name: "item_id", Type: FieldText, Message: "Please enter a valid item ID."},
		{Name: "date", Type: FieldDate, Message: "Please enter a valid date."},
		{Name: "platform", Type: FieldText, Message: "Please enter a valid platform."},
		{Name: "seller_username", Type: FieldText, Message: "Please enter a valid seller username."},
		{Name: "listing_title", Type: FieldText, Message: "Please enter a valid listing title."},
		{Name: "individual_price", Type: FieldNumeric, Message: "Please enter a valid individual price."},
		{Name: "quantity", Type: FieldInt, Message: "Please enter a valid quantity."},
		{Name: "shipping_price", Type: FieldNumeric, Message: "Please enter a valid shipping price."},
		{Name: "tax", Type: FieldNumeric, Message: "Please enter a valid tax."},
		{Name: "total", Type: FieldNumeric, Message: "Please enter a valid total."},
		{Name: "amount_refunded", Type: FieldNumeric, Message: "Please enter a valid amount refunded."},
	}
}

func refundFields() []FieldSpec {
	return []FieldSpec{
		{Name: "id", Type: FieldInt, Message: "Please enter a valid refund ID."},
		{Name: "gross_amount", Type: FieldNumeric, Message: "Please enter a valid gross amount."},
		{Name: "refund_type", Type: FieldText, Message: "Please select a refund type."},
		{Name: "fv_fixed_credit", Type: FieldNumeric, Message: "Please enter a valid fixed credit amount."},
		{Name: "fv_variable_credit", Type: FieldNumeric, Message: "Please enter a valid variable credit amount."},
		{Name: "ebay_tax_refunded", Type: FieldNumeric, Message: "Please enter a valid eBay tax refunded amount."},
		{Name: "net_amount", Type: FieldNumeric, Message: "Please enter a valid net amount."},
		{Name: "date", Type: FieldDate, Message: "Please enter a valid date."},
	}
}

func labelFields() []FieldSpec {
	return []FieldSpec{
		{Name: "tracking_number", Type: FieldText, Message: "Please enter a valid tracking number."},
		{Name: "order_number", Type: FieldText, Message: "Please enter a valid order number."},
		{Name: "shipping_service", Type: FieldText, Message: "Please enter a valid shipping service."},
		{Name: "cost", Type: FieldNumeric, Message: "Please enter a valid cost."},
		{Name: "date", Type: FieldDate, Message: "Please enter a valid date."},
		{Name: "buyer_username", Type: FieldText, Message: "Please enter a valid buyer username."},
		{Name: "notes", Type: FieldText, Message: "Please enter valid notes."},
	}
}

// omitFields returns specs without the named fields. Used to derive update
// specs from the full set.
func omitFields(specs []FieldSpec, names ...string) []FieldSpec {
	out := make([]FieldSpec, 0, len(specs))
	for _, spec := range specs {
		skip := false
		for _, name := range names {
			if spec.Name == name {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, spec)
		}
	}
	return out
}

func init() {
	Register(RecordDefinition{
		Kind:       "orders",
		Label:      "order",
		Fields:     orderFields(),
		SerialDate: "date",
		StringKeys: []string{"item_id", "zip", "state"},
		Build: func(vals Fields) any {
			return Order{
				OrderNumber:      vals.str("order_number"),
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
		},
		Insert: func(ctx context.Context, store Store, rec any) error {
			return store.InsertOrder(ctx, rec.(Order))
		},
	})

	Register(RecordDefinition{
		Kind:       "purchases",
		Label:      "purchase",
		Fields:     purchaseFields(),
		SerialDate: "date",
		StringKeys: []string{"item_id"},
		Build: func(vals Fields) any {
			return Purchase{
				ItemID:          vals.str("item_id"),
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
		},
		Insert: func(ctx context.Context, store Store, rec any) error {
			return store.InsertPurchase(ctx, rec.(Purchase))
		},
	})

	Register(RecordDefinition{
		Kind:       "refunds",
		Label:      "refund",
		Fields:     refundFields(),
		SerialDate: "date",
		Build: func(vals Fields) any {
			return Refund{
				ID:               int64(vals.intval("id")),
				GrossAmount:      vals.num("gross_amount"),
				RefundType:       vals.str("refund_type"),
				FvFixedCredit:    vals.num("fv_fixed_credit"),
				FvVariableCredit: vals.num("fv_variable_credit"),
				EbayTaxRefunded:  vals.num("ebay_tax_refunded"),
				NetAmount:        vals.num("net_amount"),
				Date:             vals.str("date"),
			}
		},
		Insert: func(ctx context.Context, store Store, rec any) error {
			return store.InsertRefund(ctx, rec.(Refund))
		},
	})
}
