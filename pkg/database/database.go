package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("Database connected successfully")

	return pool, nil
}

// Migrate creates the document collections. Every entity lives in a single
// JSONB column keyed by its string id; field queries go through JSONB
// expression predicates.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	schema := `
		CREATE TABLE IF NOT EXISTS customers (
			id  TEXT PRIMARY KEY,
			doc JSONB NOT NULL
		);
		CREATE TABLE IF NOT EXISTS products (
			id  TEXT PRIMARY KEY,
			doc JSONB NOT NULL
		);
		CREATE TABLE IF NOT EXISTS orders (
			id  TEXT PRIMARY KEY,
			doc JSONB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_customers_email ON customers ((doc->>'email'));
		CREATE INDEX IF NOT EXISTS idx_orders_customer_email ON orders ((doc->'customer'->>'email'));
		CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders ((doc->>'orderDate'));
	`
	_, err := pool.Exec(ctx, schema)
	return err
}
