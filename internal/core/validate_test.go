package core

import (
	"testing"
)

func TestValidateInvoiceFields(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		vals, ferrs := Validate(Fields{
			"customerId": "cust-1",
			"amount":     "19.99",
			"status":     "paid",
		}, invoiceFields())

		if ferrs != nil {
			t.Fatalf("unexpected errors: %v", ferrs)
		}
		if got := vals.num("amount"); got != 19.99 {
			t.Errorf("amount = %v, want 19.99", got)
		}
		if got := vals.str("status"); got != "paid" {
			t.Errorf("status = %q, want %q", got, "paid")
		}
	})

	t.Run("empty submission reports every field", func(t *testing.T) {
		vals, ferrs := Validate(Fields{}, invoiceFields())

		if vals != nil {
			t.Fatalf("expected nil values, got %v", vals)
		}
		if len(ferrs) != 3 {
			t.Fatalf("expected 3 field errors, got %d: %v", len(ferrs), ferrs)
		}
		wantMessages := map[string]string{
			"customerId": "Please select a customer.",
			"amount":     "Please enter an amount greater than $0.",
			"status":     "Please select an invoice status.",
		}
		for field, want := range wantMessages {
			msgs := ferrs[field]
			if len(msgs) != 1 || msgs[0] != want {
				t.Errorf("errors[%q] = %v, want [%q]", field, msgs, want)
			}
		}
	})

	t.Run("zero amount fails the bound", func(t *testing.T) {
		_, ferrs := Validate(Fields{
			"customerId": "cust-1",
			"amount":     "0",
			"status":     "paid",
		}, invoiceFields())

		if len(ferrs) != 1 || len(ferrs["amount"]) != 1 {
			t.Fatalf("expected exactly one amount error, got %v", ferrs)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, ferrs := Validate(Fields{
			"customerId": "cust-1",
			"amount":     "5",
			"status":     "overdue",
		}, invoiceFields())

		if len(ferrs) != 1 || len(ferrs["status"]) != 1 {
			t.Fatalf("expected exactly one status error, got %v", ferrs)
		}
	})
}

func TestValidateFieldTypes(t *testing.T) {
	t.Run("text accepts the empty string", func(t *testing.T) {
		specs := []FieldSpec{{Name: "notes", Type: FieldText, Message: "Please enter valid notes."}}
		vals, ferrs := Validate(Fields{"notes": ""}, specs)
		if ferrs != nil {
			t.Fatalf("unexpected errors: %v", ferrs)
		}
		if vals.str("notes") != "" {
			t.Errorf("notes = %q, want empty string", vals.str("notes"))
		}
	})

	t.Run("text rejects non-strings", func(t *testing.T) {
		specs := []FieldSpec{{Name: "notes", Type: FieldText, Message: "Please enter valid notes."}}
		_, ferrs := Validate(Fields{"notes": 12.0}, specs)
		if len(ferrs["notes"]) != 1 {
			t.Fatalf("expected a notes error, got %v", ferrs)
		}
	})

	t.Run("date requires the storage layout", func(t *testing.T) {
		specs := []FieldSpec{{Name: "date", Type: FieldDate, Message: "Please enter a valid date."}}
		if _, ferrs := Validate(Fields{"date": "2023-01-01"}, specs); ferrs != nil {
			t.Fatalf("valid date rejected: %v", ferrs)
		}
		if _, ferrs := Validate(Fields{"date": "2023-13-01"}, specs); len(ferrs["date"]) != 1 {
			t.Fatalf("expected a date error, got %v", ferrs)
		}
		if _, ferrs := Validate(Fields{"date": "01/01/2023"}, specs); len(ferrs["date"]) != 1 {
			t.Fatalf("expected a date error, got %v", ferrs)
		}
	})

	t.Run("numeric coerces formatted strings", func(t *testing.T) {
		specs := []FieldSpec{{Name: "total", Type: FieldNumeric, Message: "Please enter a valid total."}}
		vals, ferrs := Validate(Fields{"total": "$1,234.56"}, specs)
		if ferrs != nil {
			t.Fatalf("unexpected errors: %v", ferrs)
		}
		if vals.num("total") != 1234.56 {
			t.Errorf("total = %v, want 1234.56", vals.num("total"))
		}
	})

	t.Run("int rejects fractional values", func(t *testing.T) {
		specs := []FieldSpec{{Name: "quantity", Type: FieldInt, Message: "Please enter a valid quantity."}}
		if _, ferrs := Validate(Fields{"quantity": 2.0}, specs); ferrs != nil {
			t.Fatalf("whole float rejected: %v", ferrs)
		}
		if _, ferrs := Validate(Fields{"quantity": 2.5}, specs); len(ferrs["quantity"]) != 1 {
			t.Fatalf("expected a quantity error, got %v", ferrs)
		}
	})

	t.Run("nil value counts as missing", func(t *testing.T) {
		specs := []FieldSpec{{Name: "city", Type: FieldText, Message: "Please enter a valid city."}}
		if _, ferrs := Validate(Fields{"city": nil}, specs); len(ferrs["city"]) != 1 {
			t.Fatalf("expected a city error, got %v", ferrs)
		}
	})
}

func TestValidateReportsAllFailuresAtOnce(t *testing.T) {
	_, ferrs := Validate(Fields{
		"order_number": "12-34567-89012",
		"date":         "not a date",
		"item_title":   "Widget",
		"item_id":      "111",
		// buyer_username missing
		"buyer_name":         "Jane Doe",
		"city":               "Atlanta",
		"state":              "GA",
		"zip":                "30301",
		"quantity":           "two",
		"item_subtotal":      10.0,
		"shipping_handling":  3.0,
		"ebay_collected_tax": 0.8,
		"fv_fixed":           0.3,
		"fv_variable":        1.2,
		"international_fee":  0.0,
		"gross_amount":       13.8,
		"net_amount":         12.3,
	}, orderFields())

	if len(ferrs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(ferrs), ferrs)
	}
	for _, field := range []string{"date", "buyer_username", "quantity"} {
		if len(ferrs[field]) == 0 {
			t.Errorf("expected an error for %q, got none", field)
		}
	}
}
