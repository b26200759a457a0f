// Package storage implements the persistence boundary over Postgres. Every
// operation is a single parameterized statement; the pool is owned by the
// caller and acquired implicitly per statement.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/iparr-biocorellc/backoffice/internal/auth"
	"github.com/iparr-biocorellc/backoffice/internal/core"
	"github.com/iparr-biocorellc/backoffice/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres is the pgx-backed store for all record tables and users.
type Postgres struct {
	db DBTX
}

// New creates a Postgres store over the given connection source.
func New(db DBTX) *Postgres {
	return &Postgres{db: db}
}

const dateLayout = "2006-01-02"

// InitSchema creates the application tables if they do not exist.
func (p *Postgres) InitSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY,
		customer_id TEXT NOT NULL,
		amount BIGINT NOT NULL,
		status TEXT NOT NULL,
		date DATE NOT NULL
	);
	CREATE TABLE IF NOT EXISTS orders (
		order_number TEXT PRIMARY KEY,
		date DATE NOT NULL,
		item_title TEXT NOT NULL,
		item_id TEXT NOT NULL,
		buyer_username TEXT NOT NULL,
		buyer_name TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		zip TEXT NOT NULL,
		quantity INT NOT NULL,
		item_subtotal NUMERIC NOT NULL,
		shipping_handling NUMERIC NOT NULL,
		ebay_collected_tax NUMERIC NOT NULL,
		fv_fixed NUMERIC NOT NULL,
		fv_variable NUMERIC NOT NULL,
		international_fee NUMERIC NOT NULL,
		gross_amount NUMERIC NOT NULL,
		net_amount NUMERIC NOT NULL
	);
	CREATE TABLE IF NOT EXISTS purchases (
		item_id TEXT PRIMARY KEY,
		date DATE NOT NULL,
		platform TEXT NOT NULL,
		seller_username TEXT NOT NULL,
		listing_title TEXT NOT NULL,
		individual_price NUMERIC NOT NULL,
		quantity INT NOT NULL,
		shipping_price NUMERIC NOT NULL,
		tax NUMERIC NOT NULL,
		total NUMERIC NOT NULL,
		amount_refunded NUMERIC NOT NULL
	);
	CREATE TABLE IF NOT EXISTS refunds (
		id BIGINT PRIMARY KEY,
		gross_amount NUMERIC NOT NULL,
		refund_type TEXT NOT NULL,
		fv_fixed_credit NUMERIC NOT NULL,
		fv_variable_credit NUMERIC NOT NULL,
		ebay_tax_refunded NUMERIC NOT NULL,
		net_amount NUMERIC NOT NULL,
		date DATE NOT NULL
	);
	CREATE TABLE IF NOT EXISTS labels (
		tracking_number TEXT PRIMARY KEY,
		order_number TEXT NOT NULL,
		shipping_service TEXT NOT NULL,
		cost NUMERIC NOT NULL,
		date DATE NOT NULL,
		buyer_username TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT ''
	);`

	_, err := p.db.Exec(ctx, schema)
	return err
}

// ----------------------------------------------------------------------------
// Invoices
// ----------------------------------------------------------------------------

func (p *Postgres) InsertInvoice(ctx context.Context, inv core.Invoice) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`,
		inv.ID, inv.CustomerID, inv.Amount, inv.Status, inv.Date)
	return err
}

func (p *Postgres) UpdateInvoice(ctx context.Context, inv core.Invoice) error {
	_, err := p.db.Exec(ctx, `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4`,
		inv.CustomerID, inv.Amount, inv.Status, inv.ID)
	return err
}

func (p *Postgres) DeleteInvoice(ctx context.Context, id string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}

func (p *Postgres) ListInvoices(ctx context.Context) ([]core.Invoice, error) {
	rows, err := p.db.Query(ctx, `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		ORDER BY date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []core.Invoice
	for rows.Next() {
		var inv core.Invoice
		var date time.Time
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &date); err != nil {
			return nil, err
		}
		inv.Date = date.Format(dateLayout)
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// ----------------------------------------------------------------------------
// Orders
// ----------------------------------------------------------------------------

func (p *Postgres) InsertOrder(ctx context.Context, o core.Order) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO orders (
			order_number, date, item_title, item_id, buyer_username, buyer_name,
			city, state, zip, quantity, item_subtotal, shipping_handling,
			ebay_collected_tax, fv_fixed, fv_variable, international_fee,
			gross_amount, net_amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		o.OrderNumber, o.Date, o.ItemTitle, o.ItemID, o.BuyerUsername, o.BuyerName,
		o.City, o.State, o.Zip, o.Quantity, o.ItemSubtotal, o.ShippingHandling,
		o.EbayCollectedTax, o.FvFixed, o.FvVariable, o.InternationalFee,
		o.GrossAmount, o.NetAmount)
	return err
}

func (p *Postgres) UpdateOrder(ctx context.Context, o core.Order) error {
	_, err := p.db.Exec(ctx, `
		UPDATE orders
		SET date = $1, item_title = $2, item_id = $3, buyer_username = $4,
			buyer_name = $5, city = $6, state = $7, zip = $8, quantity = $9,
			item_subtotal = $10, shipping_handling = $11, ebay_collected_tax = $12,
			fv_fixed = $13, fv_variable = $14, international_fee = $15,
			gross_amount = $16, net_amount = $17
		WHERE order_number = $18`,
		o.Date, o.ItemTitle, o.ItemID, o.BuyerUsername,
		o.BuyerName, o.City, o.State, o.Zip, o.Quantity,
		o.ItemSubtotal, o.ShippingHandling, o.EbayCollectedTax,
		o.FvFixed, o.FvVariable, o.InternationalFee,
		o.GrossAmount, o.NetAmount, o.OrderNumber)
	return err
}

func (p *Postgres) DeleteOrder(ctx context.Context, orderNumber string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM orders WHERE order_number = $1`, orderNumber)
	return err
}

func (p *Postgres) ListOrders(ctx context.Context) ([]core.Order, error) {
	rows, err := p.db.Query(ctx, `
		SELECT order_number, date, item_title, item_id, buyer_username, buyer_name,
			city, state, zip, quantity, item_subtotal, shipping_handling,
			ebay_collected_tax, fv_fixed, fv_variable, international_fee,
			gross_amount, net_amount
		FROM orders
		ORDER BY date DESC, order_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []core.Order
	for rows.Next() {
		var o core.Order
		var date time.Time
		if err := rows.Scan(&o.OrderNumber, &date, &o.ItemTitle, &o.ItemID,
			&o.BuyerUsername, &o.BuyerName, &o.City, &o.State, &o.Zip, &o.Quantity,
			&o.ItemSubtotal, &o.ShippingHandling, &o.EbayCollectedTax,
			&o.FvFixed, &o.FvVariable, &o.InternationalFee,
			&o.GrossAmount, &o.NetAmount); err != nil {
			return nil, err
		}
		o.Date = date.Format(dateLayout)
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// ----------------------------------------------------------------------------
// Purchases
// ----------------------------------------------------------------------------

func (p *Postgres) InsertPurchase(ctx context.Context, pu core.Purchase) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO purchases (
			item_id, date, platform, seller_username, listing_title,
			individual_price, quantity, shipping_price, tax, total, amount_refunded
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		pu.ItemID, pu.Date, pu.Platform, pu.SellerUsername, pu.ListingTitle,
		pu.IndividualPrice, pu.Quantity, pu.ShippingPrice, pu.Tax, pu.Total, pu.AmountRefunded)
	return err
}

func (p *Postgres) UpdatePurchase(ctx context.Context, pu core.Purchase) error {
	_, err := p.db.Exec(ctx, `
		UPDATE purchases
		SET date = $1, platform = $2, seller_username = $3, listing_title = $4,
			individual_price = $5, quantity = $6, shipping_price = $7,
			tax = $8, total = $9, amount_refunded = $10
		WHERE item_id = $11`,
		pu.Date, pu.Platform, pu.SellerUsername, pu.ListingTitle,
		pu.IndividualPrice, pu.Quantity, pu.ShippingPrice,
		pu.Tax, pu.Total, pu.AmountRefunded, pu.ItemID)
	return err
}

func (p *Postgres) DeletePurchase(ctx context.Context, itemID string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM purchases WHERE item_id = $1`, itemID)
	return err
}

func (p *Postgres) ListPurchases(ctx context.Context) ([]core.Purchase, error) {
	rows, err := p.db.Query(ctx, `
		SELECT item_id, date, platform, seller_username, listing_title,
			individual_price, quantity, shipping_price, tax, total, amount_refunded
		FROM purchases
		ORDER BY date DESC, item_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []core.Purchase
	for rows.Next() {
		var pu core.Purchase
		var date time.Time
		if err := rows.Scan(&pu.ItemID, &date, &pu.Platform, &pu.SellerUsername,
			&pu.ListingTitle, &pu.IndividualPrice, &pu.Quantity, &pu.ShippingPrice,
			&pu.Tax, &pu.Total, &pu.AmountRefunded); err != nil {
			return nil, err
		}
		pu.Date = date.Format(dateLayout)
		purchases = append(purchases, pu)
	}
	return purchases, rows.Err()
}

// ----------------------------------------------------------------------------
// Refunds
// ----------------------------------------------------------------------------

func (p *Postgres) InsertRefund(ctx context.Context, r core.Refund) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO refunds (
			id, gross_amount, refund_type, fv_fixed_credit, fv_variable_credit,
			ebay_tax_refunded, net_amount, date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.GrossAmount, r.RefundType, r.FvFixedCredit, r.FvVariableCredit,
		r.EbayTaxRefunded, r.NetAmount, r.Date)
	return err
}

func (p *Postgres) ListRefunds(ctx context.Context) ([]core.Refund, error) {
	rows, err := p.db.Query(ctx, `
		SELECT id, gross_amount, refund_type, fv_fixed_credit, fv_variable_credit,
			ebay_tax_refunded, net_amount, date
		FROM refunds
		ORDER BY date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refunds []core.Refund
	for rows.Next() {
		var r core.Refund
		var date time.Time
		if err := rows.Scan(&r.ID, &r.GrossAmount, &r.RefundType, &r.FvFixedCredit,
			&r.FvVariableCredit, &r.EbayTaxRefunded, &r.NetAmount, &date); err != nil {
			return nil, err
		}
		r.Date = date.Format(dateLayout)
		refunds = append(refunds, r)
	}
	return refunds, rows.Err()
}

// ----------------------------------------------------------------------------
// Labels
// ----------------------------------------------------------------------------

func (p *Postgres) InsertLabel(ctx context.Context, l core.Label) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO labels (
			tracking_number, order_number, shipping_service, cost, date,
			buyer_username, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.TrackingNumber, l.OrderNumber, l.ShippingService, l.Cost, l.Date,
		l.BuyerUsername, l.Notes)
	return err
}

func (p *Postgres) UpdateLabel(ctx context.Context, l core.Label) error {
	_, err := p.db.Exec(ctx, `
		UPDATE labels
		SET order_number = $1, shipping_service = $2, cost = $3, date = $4,
			buyer_username = $5, notes = $6
		WHERE tracking_number = $7`,
		l.OrderNumber, l.ShippingService, l.Cost, l.Date,
		l.BuyerUsername, l.Notes, l.TrackingNumber)
	return err
}

func (p *Postgres) DeleteLabel(ctx context.Context, trackingNumber string) error {
	_, err := p.db.Exec(ctx, `DELETE FROM labels WHERE tracking_number = $1`, trackingNumber)
	return err
}

func (p *Postgres) ListLabels(ctx context.Context) ([]core.Label, error) {
	rows, err := p.db.Query(ctx, `
		SELECT tracking_number, order_number, shipping_service, cost, date,
			buyer_username, notes
		FROM labels
		ORDER BY date DESC, tracking_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []core.Label
	for rows.Next() {
		var l core.Label
		var date time.Time
		if err := rows.Scan(&l.TrackingNumber, &l.OrderNumber, &l.ShippingService,
			&l.Cost, &date, &l.BuyerUsername, &l.Notes); err != nil {
			return nil, err
		}
		l.Date = date.Format(dateLayout)
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// ----------------------------------------------------------------------------
// Users
// ----------------------------------------------------------------------------

// CreateUser inserts a user row. A unique violation on email is reported as
// errs.ErrEmailExists so the auth flow can match it without inspecting the
// driver error.
func (p *Postgres) CreateUser(ctx context.Context, email, passwordHash string) error {
	_, err := p.db.Exec(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)`,
		email, passwordHash)
	if core.IsDuplicateKey(err) {
		return errs.ErrEmailExists
	}
	return err
}

// UserByEmail fetches a user for credential checks.
// Returns errs.ErrUserNotFound when no row matches.
func (p *Postgres) UserByEmail(ctx context.Context, email string) (auth.User, error) {
	var u auth.User
	err := p.db.QueryRow(ctx, `
		SELECT id, email, password_hash
		FROM users
		WHERE email = $1`,
		email).Scan(&u.ID, &u.Email, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return auth.User{}, errs.ErrUserNotFound
	}
	return u, err
}
