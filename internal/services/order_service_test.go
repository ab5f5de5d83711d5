package services

import (
	"context"
	"errors"
	"testing"

	"miniorder/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	orderRepo    *MockOrderRepository
	productRepo  *MockProductRepository
	customerRepo *MockCustomerRepository
	service      OrderService
	ctx          context.Context
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.orderRepo = &MockOrderRepository{}
	suite.productRepo = &MockProductRepository{}
	suite.customerRepo = &MockCustomerRepository{}
	suite.service = NewOrderService(suite.orderRepo, suite.productRepo, suite.customerRepo)
	suite.ctx = context.Background()

	suite.orderRepo.Test(suite.T())
	suite.productRepo.Test(suite.T())
	suite.customerRepo.Test(suite.T())
}

func (suite *OrderServiceTestSuite) TearDownTest() {
	suite.orderRepo.AssertExpectations(suite.T())
	suite.productRepo.AssertExpectations(suite.T())
	suite.customerRepo.AssertExpectations(suite.T())
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (suite *OrderServiceTestSuite) TestCreate_Success() {
	customer := &models.Customer{
		ID:      "cust-1",
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "555-1234",
		Address: "12 Analytical Way",
	}
	seeds := &models.Product{ID: "prod-1", Name: "Seeds", Price: 10.50, Category: "garden"}
	shovel := &models.Product{ID: "prod-2", Name: "Shovel", Price: 3.00, Category: "tools"}

	suite.customerRepo.On("GetByID", suite.ctx, "cust-1").Return(customer, nil)
	suite.productRepo.On("GetByID", suite.ctx, "prod-1").Return(seeds, nil)
	suite.productRepo.On("GetByID", suite.ctx, "prod-2").Return(shovel, nil)
	suite.orderRepo.On("Save", suite.ctx, mock.AnythingOfType("*models.Order")).Return(nil)

	// The request carries only ids; prices in the request must be ignored
	// in favor of the current product records.
	order := &models.Order{
		Customer: models.Customer{ID: "cust-1"},
		Items: []models.OrderItem{
			{Product: models.Product{ID: "prod-1", Price: 999}, Quantity: 2},
			{Product: models.Product{ID: "prod-2"}, Quantity: 4},
		},
	}

	created, err := suite.service.Create(suite.ctx, order)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), created)

	assert.Equal(suite.T(), *customer, created.Customer)
	assert.Equal(suite.T(), *seeds, created.Items[0].Product)
	assert.Equal(suite.T(), *shovel, created.Items[1].Product)
	assert.Equal(suite.T(), 21.0, created.Items[0].Subtotal)
	assert.Equal(suite.T(), 12.0, created.Items[1].Subtotal)
	assert.Equal(suite.T(), 33.0, created.TotalAmount)

	assert.NotEmpty(suite.T(), created.ID)
	assert.False(suite.T(), created.OrderDate.IsZero())
	assert.Equal(suite.T(), created.OrderDate, created.CreatedAt)
	assert.Equal(suite.T(), created.OrderDate, created.UpdatedAt)
}

func (suite *OrderServiceTestSuite) TestCreate_CustomerNotFound() {
	suite.customerRepo.On("GetByID", suite.ctx, "missing").Return(nil, pgx.ErrNoRows)

	order := &models.Order{
		Customer: models.Customer{ID: "missing"},
		Items: []models.OrderItem{
			{Product: models.Product{ID: "prod-1"}, Quantity: 1},
		},
	}

	created, err := suite.service.Create(suite.ctx, order)
	assert.Nil(suite.T(), created)
	assert.ErrorIs(suite.T(), err, ErrCustomerNotFound)

	// The customer lookup fails first; products are never touched.
	suite.productRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
	suite.orderRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreate_SecondProductMissing() {
	customer := &models.Customer{ID: "cust-1", Email: "ada@example.com"}
	seeds := &models.Product{ID: "prod-1", Price: 5}

	suite.customerRepo.On("GetByID", suite.ctx, "cust-1").Return(customer, nil)
	suite.productRepo.On("GetByID", suite.ctx, "prod-1").Return(seeds, nil)
	suite.productRepo.On("GetByID", suite.ctx, "gone").Return(nil, pgx.ErrNoRows)

	order := &models.Order{
		Customer: models.Customer{ID: "cust-1"},
		Items: []models.OrderItem{
			{Product: models.Product{ID: "prod-1"}, Quantity: 1},
			{Product: models.Product{ID: "gone"}, Quantity: 1},
		},
	}

	created, err := suite.service.Create(suite.ctx, order)
	assert.Nil(suite.T(), created)

	var notFound *ProductNotFoundError
	assert.ErrorAs(suite.T(), err, &notFound)
	assert.Equal(suite.T(), "gone", notFound.ProductID)

	// All-or-nothing: no partial order is persisted.
	suite.orderRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreate_InvalidQuantity() {
	customer := &models.Customer{ID: "cust-1"}
	suite.customerRepo.On("GetByID", suite.ctx, "cust-1").Return(customer, nil)

	order := &models.Order{
		Customer: models.Customer{ID: "cust-1"},
		Items: []models.OrderItem{
			{Product: models.Product{ID: "prod-1"}, Quantity: 0},
		},
	}

	created, err := suite.service.Create(suite.ctx, order)
	assert.Nil(suite.T(), created)

	var invalid *InvalidQuantityError
	assert.ErrorAs(suite.T(), err, &invalid)
	assert.Equal(suite.T(), "prod-1", invalid.ProductID)

	suite.productRepo.AssertNotCalled(suite.T(), "GetByID", mock.Anything, mock.Anything)
	suite.orderRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCreate_EmptyItems() {
	customer := &models.Customer{ID: "cust-1", Email: "ada@example.com"}
	suite.customerRepo.On("GetByID", suite.ctx, "cust-1").Return(customer, nil)
	suite.orderRepo.On("Save", suite.ctx, mock.AnythingOfType("*models.Order")).Return(nil)

	order := &models.Order{Customer: models.Customer{ID: "cust-1"}}

	created, err := suite.service.Create(suite.ctx, order)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, created.TotalAmount)
}

func (suite *OrderServiceTestSuite) TestGetByID_NotFound() {
	suite.orderRepo.On("GetByID", suite.ctx, "missing").Return(nil, pgx.ErrNoRows)

	order, err := suite.service.GetByID(suite.ctx, "missing")
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), order)
}

func (suite *OrderServiceTestSuite) TestGetByID_StoreError() {
	storeErr := errors.New("connection reset")
	suite.orderRepo.On("GetByID", suite.ctx, "order-1").Return(nil, storeErr)

	order, err := suite.service.GetByID(suite.ctx, "order-1")
	assert.Nil(suite.T(), order)
	assert.ErrorIs(suite.T(), err, storeErr)
}
