package repositories

import (
	"context"
	"encoding/json"

	"miniorder/internal/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository interface {
	List(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*models.Product, error)
	Save(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepo struct {
	db Database
}

func NewProductRepository(db Database) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) List(ctx context.Context) ([]*models.Product, error) {
	query := `SELECT doc FROM products ORDER BY doc->>'name'`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT doc FROM products WHERE id = $1`
	var doc []byte
	if err := r.db.QueryRow(ctx, query, id).Scan(&doc); err != nil {
		return nil, err
	}
	product := &models.Product{}
	if err := json.Unmarshal(doc, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) GetByName(ctx context.Context, name string) (*models.Product, error) {
	query := `SELECT doc FROM products WHERE doc->>'name' = $1`
	var doc []byte
	if err := r.db.QueryRow(ctx, query, name).Scan(&doc); err != nil {
		return nil, err
	}
	product := &models.Product{}
	if err := json.Unmarshal(doc, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) FindByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	query := `SELECT doc FROM products WHERE doc->>'category' = $1 ORDER BY doc->>'name'`
	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *productRepo) Save(ctx context.Context, product *models.Product) error {
	doc, err := json.Marshal(product)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
	`
	_, err = r.db.Exec(ctx, query, product.ID, doc)
	return err
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

// scanProducts always returns a non-nil slice so empty result sets
// serialize as [] rather than null.
func scanProducts(rows pgx.Rows) ([]*models.Product, error) {
	products := []*models.Product{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		product := &models.Product{}
		if err := json.Unmarshal(doc, product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}
