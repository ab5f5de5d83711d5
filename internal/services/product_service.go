package services

import (
	"context"
	"errors"

	"miniorder/internal/models"
	"miniorder/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNegativePrice = errors.New("product price must be non-negative")

type ProductService interface {
	GetAll(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, details *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) GetAll(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.List(ctx)
}

// GetByID returns (nil, nil) when the product does not exist.
func (s *productService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetByName(ctx context.Context, name string) (*models.Product, error) {
	product, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) FindByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	return s.productRepo.FindByCategory(ctx, category)
}

func (s *productService) Create(ctx context.Context, product *models.Product) error {
	if product.Price < 0 {
		return ErrNegativePrice
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	return s.productRepo.Save(ctx, product)
}

// Update overwrites the mutable fields of an existing product. Returns
// (nil, nil) without writing anything when the id does not exist.
func (s *productService) Update(ctx context.Context, id string, details *models.Product) (*models.Product, error) {
	if details.Price < 0 {
		return nil, ErrNegativePrice
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	product.Name = details.Name
	product.Price = details.Price
	product.Category = details.Category

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}
