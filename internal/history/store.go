// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists parsed orders to a local SQLite database so
// past export runs can be audited and re-printed orders spotted.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/grademint/packslip/pkg/types"
)

// Store manages the order history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at dbPath, creating the
// parent directory and schema as needed.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			number TEXT PRIMARY KEY,
			marketplace TEXT NOT NULL,
			buyer_name TEXT,
			ship_to_name TEXT,
			order_date TEXT,
			shipping_method TEXT,
			item_count INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			order_number TEXT NOT NULL REFERENCES orders(number),
			quantity TEXT,
			description TEXT NOT NULL,
			product_line TEXT,
			set_name TEXT,
			name TEXT,
			number TEXT,
			rarity TEXT,
			condition TEXT,
			price TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_items_order_number ON items(order_number)`,
		`CREATE INDEX IF NOT EXISTS idx_items_name ON items(name)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordSummary holds counts from one history write.
type RecordSummary struct {
	Inserted int
	Updated  int
}

// Record upserts the given orders and their line items. A re-parsed
// export replaces each order's items rather than duplicating them.
func (s *Store) Record(ctx context.Context, orders []*types.Order) (RecordSummary, error) {
	var summary RecordSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	recordedAt := time.Now().UTC().Format(time.RFC3339)

	itemStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO items (order_number, quantity, description, product_line, set_name, name, number, rarity, condition, price)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return summary, fmt.Errorf("preparing item insert: %w", err)
	}
	defer itemStmt.Close()

	for _, order := range orders {
		var existing int
		err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM orders WHERE number = ?`, order.Number,
		).Scan(&existing)
		if err != nil {
			return summary, fmt.Errorf("checking order %s: %w", order.Number, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO orders (number, marketplace, buyer_name, ship_to_name, order_date, shipping_method, item_count, recorded_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(number) DO UPDATE SET
				marketplace=excluded.marketplace, buyer_name=excluded.buyer_name,
				ship_to_name=excluded.ship_to_name, order_date=excluded.order_date,
				shipping_method=excluded.shipping_method, item_count=excluded.item_count,
				recorded_at=excluded.recorded_at`,
			order.Number, string(order.Marketplace), order.SaleInfo.BuyerName,
			order.ShippingAddress.Name, order.SaleInfo.OrderDate,
			order.SaleInfo.ShippingMethod, len(order.LineItems), recordedAt,
		)
		if err != nil {
			return summary, fmt.Errorf("upserting order %s: %w", order.Number, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE order_number = ?`, order.Number); err != nil {
			return summary, fmt.Errorf("clearing items for order %s: %w", order.Number, err)
		}
		for _, item := range order.LineItems {
			_, err := itemStmt.ExecContext(ctx,
				order.Number, item.Quantity, item.Description,
				item.ProductLine, item.SetName, item.Name,
				item.Number, item.Rarity, item.Condition, item.Price,
			)
			if err != nil {
				return summary, fmt.Errorf("inserting item for order %s: %w", order.Number, err)
			}
		}

		if existing > 0 {
			summary.Updated++
		} else {
			summary.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, err
	}
	return summary, nil
}

// List writes one line per recorded order to w, newest first.
func (s *Store) List(ctx context.Context, w io.Writer) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT number, marketplace, ship_to_name, order_date, item_count, recorded_at
		 FROM orders ORDER BY recorded_at DESC, number`)
	if err != nil {
		return fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var number, marketplace, shipToName, orderDate, recordedAt string
		var itemCount int
		if err := rows.Scan(&number, &marketplace, &shipToName, &orderDate, &itemCount, &recordedAt); err != nil {
			return fmt.Errorf("scanning order row: %w", err)
		}
		fmt.Fprintf(w, "%s  %-12s  %-10s  %2d items  %s\n",
			recordedAt, marketplace, orderDate, itemCount, number)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d orders recorded\n", count)
	return nil
}

// Count returns the number of recorded orders.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM orders`).Scan(&n)
	return n, err
}
