package services

import (
	"context"
	"errors"

	"miniorder/internal/models"
	"miniorder/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomerService interface {
	GetAll(ctx context.Context) ([]*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)
	FindByName(ctx context.Context, name string) ([]*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, id string, details *models.Customer) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
}

type customerService struct {
	customerRepo repositories.CustomerRepository
	orderRepo    repositories.OrderRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository, orderRepo repositories.OrderRepository) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

func (s *customerService) GetAll(ctx context.Context) ([]*models.Customer, error) {
	return s.customerRepo.List(ctx)
}

// GetByID returns (nil, nil) when the customer does not exist.
func (s *customerService) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) FindByName(ctx context.Context, name string) ([]*models.Customer, error) {
	return s.customerRepo.FindByName(ctx, name)
}

func (s *customerService) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	return s.customerRepo.Save(ctx, customer)
}

// Update overwrites the mutable fields of an existing customer. Returns
// (nil, nil) without writing anything when the id does not exist.
func (s *customerService) Update(ctx context.Context, id string, details *models.Customer) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	customer.Name = details.Name
	customer.Email = details.Email
	customer.Phone = details.Phone
	customer.Address = details.Address

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer together with every order whose embedded
// customer snapshot carries the same email. A missing id is a no-op.
// The cascade is keyed on email, matching the embedded snapshot: if a
// customer's email changed after orders were placed, those older orders
// are not picked up.
func (s *customerService) Delete(ctx context.Context, id string) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	if err := s.orderRepo.DeleteByCustomerEmail(ctx, customer.Email); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
