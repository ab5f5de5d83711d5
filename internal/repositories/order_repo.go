package repositories

import (
	"context"
	"encoding/json"
	"time"

	"miniorder/internal/models"

	"github.com/jackc/pgx/v5"
)

type OrderRepository interface {
	List(ctx context.Context) ([]*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]*models.Order, error)
	FindByCustomerPhone(ctx context.Context, phone string) ([]*models.Order, error)
	FindByMinTotal(ctx context.Context, minTotal float64) ([]*models.Order, error)
	FindByOrderDateBetween(ctx context.Context, from, to time.Time) ([]*models.Order, error)
	Save(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id string) error
	DeleteByCustomerEmail(ctx context.Context, email string) error
}

type orderRepo struct {
	db Database
}

func NewOrderRepository(db Database) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) List(ctx context.Context) ([]*models.Order, error) {
	query := `SELECT doc FROM orders ORDER BY doc->>'orderDate' DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *orderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query := `SELECT doc FROM orders WHERE id = $1`
	var doc []byte
	if err := r.db.QueryRow(ctx, query, id).Scan(&doc); err != nil {
		return nil, err
	}
	order := &models.Order{}
	if err := json.Unmarshal(doc, order); err != nil {
		return nil, err
	}
	return order, nil
}

// FindByCustomerEmail matches on the customer snapshot embedded in each
// order, not on the live customer record.
func (r *orderRepo) FindByCustomerEmail(ctx context.Context, email string) ([]*models.Order, error) {
	query := `SELECT doc FROM orders WHERE doc->'customer'->>'email' = $1 ORDER BY doc->>'orderDate' DESC`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *orderRepo) FindByCustomerPhone(ctx context.Context, phone string) ([]*models.Order, error) {
	query := `SELECT doc FROM orders WHERE doc->'customer'->>'phone' = $1 ORDER BY doc->>'orderDate' DESC`
	rows, err := r.db.Query(ctx, query, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *orderRepo) FindByMinTotal(ctx context.Context, minTotal float64) ([]*models.Order, error) {
	query := `SELECT doc FROM orders WHERE (doc->>'totalAmount')::numeric >= $1 ORDER BY doc->>'orderDate' DESC`
	rows, err := r.db.Query(ctx, query, minTotal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

// FindByOrderDateBetween is inclusive on both bounds.
func (r *orderRepo) FindByOrderDateBetween(ctx context.Context, from, to time.Time) ([]*models.Order, error) {
	query := `SELECT doc FROM orders WHERE (doc->>'orderDate')::timestamptz BETWEEN $1 AND $2 ORDER BY doc->>'orderDate' DESC`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *orderRepo) Save(ctx context.Context, order *models.Order) error {
	doc, err := json.Marshal(order)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO orders (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
	`
	_, err = r.db.Exec(ctx, query, order.ID, doc)
	return err
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM orders WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *orderRepo) DeleteByCustomerEmail(ctx context.Context, email string) error {
	query := `DELETE FROM orders WHERE doc->'customer'->>'email' = $1`
	_, err := r.db.Exec(ctx, query, email)
	return err
}

// scanOrders always returns a non-nil slice so empty result sets
// serialize as [] rather than null.
func scanOrders(rows pgx.Rows) ([]*models.Order, error) {
	orders := []*models.Order{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		order := &models.Order{}
		if err := json.Unmarshal(doc, order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
