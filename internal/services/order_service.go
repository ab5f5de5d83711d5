package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"miniorder/internal/models"
	"miniorder/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrCustomerNotFound signals that an order references a customer id that
// does not exist at creation time.
var ErrCustomerNotFound = errors.New("order customer not found")

// ProductNotFoundError indicates an order item references a product id that
// does not exist at creation time.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// InvalidQuantityError indicates an order item has a non-positive quantity.
type InvalidQuantityError struct {
	ProductID string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0 for product %s", e.ProductID)
}

type OrderService interface {
	GetAll(ctx context.Context) ([]*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByCustomerEmail(ctx context.Context, email string) ([]*models.Order, error)
	GetByCustomerPhone(ctx context.Context, phone string) ([]*models.Order, error)
	GetByMinTotal(ctx context.Context, minTotal float64) ([]*models.Order, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*models.Order, error)
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	Delete(ctx context.Context, id string) error
}

type orderService struct {
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	customerRepo repositories.CustomerRepository
}

func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, customerRepo repositories.CustomerRepository) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

func (s *orderService) GetAll(ctx context.Context) ([]*models.Order, error) {
	return s.orderRepo.List(ctx)
}

// GetByID returns (nil, nil) when the order does not exist.
func (s *orderService) GetByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetByCustomerEmail(ctx context.Context, email string) ([]*models.Order, error) {
	return s.orderRepo.FindByCustomerEmail(ctx, email)
}

func (s *orderService) GetByCustomerPhone(ctx context.Context, phone string) ([]*models.Order, error) {
	return s.orderRepo.FindByCustomerPhone(ctx, phone)
}

func (s *orderService) GetByMinTotal(ctx context.Context, minTotal float64) ([]*models.Order, error) {
	return s.orderRepo.FindByMinTotal(ctx, minTotal)
}

func (s *orderService) GetByDateRange(ctx context.Context, from, to time.Time) ([]*models.Order, error) {
	return s.orderRepo.FindByOrderDateBetween(ctx, from, to)
}

// Create resolves the order's customer reference and every item's product
// reference into full snapshots, computes subtotals and the order total in
// one pass, stamps all timestamps with the same instant, and persists the
// result. Nothing is written if any reference fails to resolve.
func (s *orderService) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	customer, err := s.customerRepo.GetByID(ctx, order.Customer.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	order.Customer = *customer

	var total float64
	for i := range order.Items {
		item := &order.Items[i]
		if item.Quantity <= 0 {
			return nil, &InvalidQuantityError{ProductID: item.Product.ID}
		}
		product, err := s.productRepo.GetByID(ctx, item.Product.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, &ProductNotFoundError{ProductID: item.Product.ID}
			}
			return nil, err
		}
		item.Product = *product
		item.Subtotal = product.Price * float64(item.Quantity)
		total += item.Subtotal
	}
	order.TotalAmount = total

	now := time.Now().UTC()
	order.OrderDate = now
	order.CreatedAt = now
	order.UpdatedAt = now

	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}
