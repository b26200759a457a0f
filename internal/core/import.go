package core

// import.go is the bulk-import pipeline for spreadsheet rows. Every row is
// transformed (serial date to calendar string, identifier fields to string)
// and validated before anything is persisted, so an invalid row anywhere in
// the batch persists zero rows. Valid batches insert sequentially in input
// order with one statement per row. There is no transaction around the batch:
// a mid-batch insert failure leaves the earlier rows committed and reports
// only a generic database message.

import (
	"context"
	"fmt"
)

// ImportOrders imports a batch of order rows.
func (s *Service) ImportOrders(ctx context.Context, rows []Fields) Outcome {
	return s.importRows(ctx, "orders", rows)
}

// ImportPurchases imports a batch of purchase rows.
func (s *Service) ImportPurchases(ctx context.Context, rows []Fields) Outcome {
	return s.importRows(ctx, "purchases", rows)
}

// ImportRefunds imports a batch of refund rows.
func (s *Service) ImportRefunds(ctx context.Context, rows []Fields) Outcome {
	return s.importRows(ctx, "refunds", rows)
}

func (s *Service) importRows(ctx context.Context, kind string, rows []Fields) Outcome {
	def, ok := Lookup(kind)
	if !ok {
		return Failure(fmt.Sprintf("Unknown record kind: %s.", kind))
	}

	records := make([]any, 0, len(rows))
	for i, row := range rows {
		vals, ferrs := Validate(normalizeRow(row, def), def.Fields)
		if ferrs != nil {
			return Invalid(ferrs, fmt.Sprintf("Failed to upload %s data (row %d).", def.Label, i+1))
		}
		records = append(records, def.Build(vals))
	}

	for _, rec := range records {
		if err := def.Insert(ctx, s.store, rec); err != nil {
			logStoreError("import "+def.Kind, err)
			return Failure(fmt.Sprintf("Database Error: Failed to upload %s data.", def.Label))
		}
	}

	return Success(fmt.Sprintf("Successfully uploaded %s data.", def.Label))
}

// normalizeRow applies the pre-validation transforms to one raw row: the
// spreadsheet date serial becomes a calendar string and identifier-like
// fields become strings regardless of how the source typed them. The input
// row is not modified.
func normalizeRow(row Fields, def RecordDefinition) Fields {
	out := make(Fields, len(row))
	for k, v := range row {
		out[k] = v
	}

	if def.SerialDate != "" {
		if serial, ok := ParseNumber(out[def.SerialDate]); ok {
			out[def.SerialDate] = FormatSerialDate(serial)
		}
	}

	for _, key := range def.StringKeys {
		if v, present := out[key]; present {
			out[key] = CoerceString(v)
		}
	}

	return out
}
