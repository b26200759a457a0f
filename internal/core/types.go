// Package core implements the record-at-a-time validate-then-persist pipeline
// behind the back-office UI: declarative field specs per record kind, form and
// bulk-import validation, and single-statement mutations against the store.
// This package has no HTTP dependencies and can be driven by any frontend.
package core

import "context"

// FieldType is the expected shape of a submitted field value.
type FieldType int

const (
	FieldText FieldType = iota
	FieldEnum
	FieldDate
	FieldNumeric
	FieldInt
)

// FieldSpec defines the validation rule for a single submitted field.
type FieldSpec struct {
	Name        string    // Submitted field name (error maps key on it exactly)
	Type        FieldType // Expected data type
	EnumValues  []string  // Valid values for FieldEnum
	GreaterThan *float64  // Exclusive lower bound for FieldNumeric
	Message     string    // User-facing message for a missing or invalid value
}

// FieldErrors maps a field name to the messages for every check it failed.
// A field appears only if it failed at least one check.
type FieldErrors map[string][]string

// Fields is a loosely typed form or spreadsheet-row submission.
type Fields map[string]any

// RecordDefinition holds everything needed to bulk-import one record kind.
type RecordDefinition struct {
	Kind       string      // Route and table key: "orders"
	Label      string      // Display name used in messages: "order"
	Fields     []FieldSpec // Full field set a row must satisfy
	SerialDate string      // Field carrying a spreadsheet date serial
	StringKeys []string    // Identifier-like fields coerced to string pre-validation
	Build      func(Fields) any
	Insert     func(context.Context, Store, any) error
}

// Invoice is a customer invoice. Amount is stored in integer cents.
type Invoice struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// Order is one completed sale, keyed by the marketplace order number.
type Order struct {
	OrderNumber      string  `json:"order_number"`
	Date             string  `json:"date"`
	ItemTitle        string  `json:"item_title"`
	ItemID           string  `json:"item_id"`
	BuyerUsername    string  `json:"buyer_username"`
	BuyerName        string  `json:"buyer_name"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Zip              string  `json:"zip"`
	Quantity         int     `json:"quantity"`
	ItemSubtotal     float64 `json:"item_subtotal"`
	ShippingHandling float64 `json:"shipping_handling"`
	EbayCollectedTax float64 `json:"ebay_collected_tax"`
	FvFixed          float64 `json:"fv_fixed"`
	FvVariable       float64 `json:"fv_variable"`
	InternationalFee float64 `json:"international_fee"`
	GrossAmount      float64 `json:"gross_amount"`
	NetAmount        float64 `json:"net_amount"`
}

// Purchase is sourced inventory, keyed by item ID.
type Purchase struct {
	ItemID          string  `json:"item_id"`
	Date            string  `json:"date"`
	Platform        string  `json:"platform"`
	SellerUsername  string  `json:"seller_username"`
	ListingTitle    string  `json:"listing_title"`
	IndividualPrice float64 `json:"individual_price"`
	Quantity        int     `json:"quantity"`
	ShippingPrice   float64 `json:"shipping_price"`
	Tax             float64 `json:"tax"`
	Total           float64 `json:"total"`
	AmountRefunded  float64 `json:"amount_refunded"`
}

// Refund is a marketplace refund event, keyed by its numeric ID.
type Refund struct {
	ID               int64   `json:"id"`
	GrossAmount      float64 `json:"gross_amount"`
	RefundType       string  `json:"refund_type"`
	FvFixedCredit    float64 `json:"fv_fixed_credit"`
	FvVariableCredit float64 `json:"fv_variable_credit"`
	EbayTaxRefunded  float64 `json:"ebay_tax_refunded"`
	NetAmount        float64 `json:"net_amount"`
	Date             string  `json:"date"`
}

// Label is a shipping label tied to an order, keyed by tracking number.
type Label struct {
	TrackingNumber  string  `json:"tracking_number"`
	OrderNumber     string  `json:"order_number"`
	ShippingService string  `json:"shipping_service"`
	Cost            float64 `json:"cost"`
	Date            string  `json:"date"`
	BuyerUsername   string  `json:"buyer_username"`
	Notes           string  `json:"notes"`
}

// Store is the persistence boundary. Every method issues exactly one
// parameterized statement; the connection pool behind it is managed by the
// caller. Satisfied by storage.Postgres.
type Store interface {
	InsertInvoice(ctx context.Context, inv Invoice) error
	UpdateInvoice(ctx context.Context, inv Invoice) error
	DeleteInvoice(ctx context.Context, id string) error
	ListInvoices(ctx context.Context) ([]Invoice, error)

	InsertOrder(ctx context.Context, o Order) error
	UpdateOrder(ctx context.Context, o Order) error
	DeleteOrder(ctx context.Context, orderNumber string) error
	ListOrders(ctx context.Context) ([]Order, error)

	InsertPurchase(ctx context.Context, p Purchase) error
	UpdatePurchase(ctx context.Context, p Purchase) error
	DeletePurchase(ctx context.Context, itemID string) error
	ListPurchases(ctx context.Context) ([]Purchase, error)

	InsertRefund(ctx context.Context, r Refund) error
	ListRefunds(ctx context.Context) ([]Refund, error)

	InsertLabel(ctx context.Context, l Label) error
	UpdateLabel(ctx context.Context, l Label) error
	DeleteLabel(ctx context.Context, trackingNumber string) error
	ListLabels(ctx context.Context) ([]Label, error)
}
