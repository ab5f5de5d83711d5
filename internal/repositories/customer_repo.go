package repositories

import (
	"context"
	"encoding/json"

	"miniorder/internal/models"

	"github.com/jackc/pgx/v5"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)
	FindByName(ctx context.Context, name string) ([]*models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
}

type customerRepo struct {
	db Database
}

func NewCustomerRepository(db Database) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) List(ctx context.Context) ([]*models.Customer, error) {
	query := `SELECT doc FROM customers ORDER BY doc->>'name'`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCustomers(rows)
}

func (r *customerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	query := `SELECT doc FROM customers WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	query := `SELECT doc FROM customers WHERE doc->>'email' = $1`
	return r.getOne(ctx, query, email)
}

func (r *customerRepo) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	query := `SELECT doc FROM customers WHERE doc->>'phone' = $1`
	return r.getOne(ctx, query, phone)
}

func (r *customerRepo) FindByName(ctx context.Context, name string) ([]*models.Customer, error) {
	query := `SELECT doc FROM customers WHERE doc->>'name' = $1`
	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCustomers(rows)
}

func (r *customerRepo) Save(ctx context.Context, customer *models.Customer) error {
	doc, err := json.Marshal(customer)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO customers (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
	`
	_, err = r.db.Exec(ctx, query, customer.ID, doc)
	return err
}

func (r *customerRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM customers WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *customerRepo) getOne(ctx context.Context, query string, arg any) (*models.Customer, error) {
	var doc []byte
	if err := r.db.QueryRow(ctx, query, arg).Scan(&doc); err != nil {
		return nil, err
	}
	customer := &models.Customer{}
	if err := json.Unmarshal(doc, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// scanCustomers always returns a non-nil slice so empty result sets
// serialize as [] rather than null.
func scanCustomers(rows pgx.Rows) ([]*models.Customer, error) {
	customers := []*models.Customer{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		customer := &models.Customer{}
		if err := json.Unmarshal(doc, customer); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}
