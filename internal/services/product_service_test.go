package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"storetrack/internal/models"
	"storetrack/internal/repositories"
	"storetrack/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.OrderView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderView), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter models.OrderFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) RevenueSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// mockStore hands out the mock repositories and runs transactions inline.
type mockStore struct {
	products *MockProductRepository
	orders   *MockOrderRepository
}

func newMockStore() *mockStore {
	return &mockStore{
		products: new(MockProductRepository),
		orders:   new(MockOrderRepository),
	}
}

func (s *mockStore) Products() repositories.ProductRepository { return s.products }
func (s *mockStore) Orders() repositories.OrderRepository     { return s.orders }

func (s *mockStore) WithinTransaction(ctx context.Context, fn func(tx repositories.Store) error) error {
	return fn(s)
}

func TestProductService_GetAllProducts(t *testing.T) {
	store := newMockStore()
	service := services.NewProductService(store)
	ctx := context.Background()

	storedProducts := []models.Product{
		{ID: "1", Name: "Product A", Price: decimal.NewFromInt(10), Stock: 100, MinStock: 5},
		{ID: "2", Name: "Product B", Price: decimal.NewFromInt(20), Stock: 3, MinStock: 5},
		{ID: "3", Name: "Product C", Price: decimal.NewFromInt(30), Stock: 0, MinStock: 5},
	}

	store.products.On("List", ctx, models.ProductFilter{Search: "Product"}).Return(storedProducts, nil).Once()

	products, err := service.GetAllProducts(ctx, models.ProductFilter{Search: "  Product "})

	assert.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, models.StockInStock, products[0].StockStatus)
	assert.Equal(t, models.StockLow, products[1].StockStatus)
	assert.Equal(t, models.StockOutOfStock, products[2].StockStatus)
	store.products.AssertExpectations(t)

	// Test repository failure
	store.products.On("List", ctx, models.ProductFilter{}).Return(nil, errors.New("connection reset")).Once()
	products, err = service.GetAllProducts(ctx, models.ProductFilter{})
	assert.Nil(t, products)
	var pe *services.PersistenceError
	assert.ErrorAs(t, err, &pe)
	assert.EqualError(t, errors.Unwrap(err), "connection reset")
	store.products.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	store := newMockStore()
	service := services.NewProductService(store)
	ctx := context.Background()

	expectedProduct := &models.Product{ID: "1", Name: "Product A", Price: decimal.NewFromInt(10), Stock: 100}

	// Test successful retrieval
	store.products.On("GetByID", ctx, "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	assert.Equal(t, models.StockInStock, product.StockStatus)
	store.products.AssertExpectations(t)

	// Test product not found
	store.products.On("GetByID", ctx, "99").
		Return(nil, fmt.Errorf("product with ID 99 not found: %w", repositories.ErrNotFound)).Once()
	product, err = service.GetProductByID(ctx, "99")
	assert.Nil(t, product)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	store.products.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	store := newMockStore()
	service := services.NewProductService(store)
	ctx := context.Background()

	newProduct := &models.Product{Name: "  New Product ", Price: decimal.NewFromFloat(15.5), Stock: 20, MinStock: 5}

	store.products.On("Create", ctx, newProduct).Return(nil).Once()
	err := service.CreateProduct(ctx, newProduct)
	assert.NoError(t, err)
	assert.Equal(t, "New Product", newProduct.Name)
	assert.Equal(t, models.StockInStock, newProduct.StockStatus)
	store.products.AssertExpectations(t)
}

func TestProductService_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name    string
		product models.Product
		want    error
	}{
		{"empty name", models.Product{Name: "", Price: decimal.NewFromInt(1)}, services.ErrInvalidProductName},
		{"blank name", models.Product{Name: "   ", Price: decimal.NewFromInt(1)}, services.ErrInvalidProductName},
		{"negative price", models.Product{Name: "A", Price: decimal.NewFromInt(-1)}, services.ErrInvalidProductPrice},
		{"negative stock", models.Product{Name: "A", Price: decimal.Zero, Stock: -1}, services.ErrInvalidStock},
		{"negative min stock", models.Product{Name: "A", Price: decimal.Zero, MinStock: -1}, services.ErrInvalidMinStock},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMockStore()
			service := services.NewProductService(store)
			ctx := context.Background()

			product := tc.product
			assert.ErrorIs(t, service.CreateProduct(ctx, &product), tc.want)
			product = tc.product
			assert.ErrorIs(t, service.UpdateProduct(ctx, &product), tc.want)

			// Nothing reaches the repository.
			store.products.AssertExpectations(t)
		})
	}
}

func TestProductService_UpdateProduct(t *testing.T) {
	store := newMockStore()
	service := services.NewProductService(store)
	ctx := context.Background()

	updatedProduct := &models.Product{ID: "1", Name: "Updated Product", Price: decimal.NewFromInt(25), Stock: 2, MinStock: 4}

	store.products.On("Update", ctx, updatedProduct).Return(nil).Once()
	err := service.UpdateProduct(ctx, updatedProduct)
	assert.NoError(t, err)
	assert.Equal(t, models.StockLow, updatedProduct.StockStatus)
	store.products.AssertExpectations(t)

	// Test updating a product that does not exist
	missing := &models.Product{ID: "99", Name: "Ghost", Price: decimal.NewFromInt(1)}
	store.products.On("Update", ctx, missing).
		Return(fmt.Errorf("product with ID 99 not found: %w", repositories.ErrNotFound)).Once()
	err = service.UpdateProduct(ctx, missing)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	store.products.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	store := newMockStore()
	service := services.NewProductService(store)
	ctx := context.Background()

	product := &models.Product{ID: "1", Name: "Product A"}

	store.products.On("GetForUpdate", ctx, "1").Return(product, nil).Once()
	store.orders.On("CountByProduct", ctx, "1").Return(int64(0), nil).Once()
	store.products.On("Delete", ctx, "1").Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(ctx, "1"))

	// Test product referenced by orders
	store.products.On("GetForUpdate", ctx, "2").Return(&models.Product{ID: "2"}, nil).Once()
	store.orders.On("CountByProduct", ctx, "2").Return(int64(3), nil).Once()
	assert.ErrorIs(t, service.DeleteProduct(ctx, "2"), services.ErrProductInUse)

	// Test product not found
	store.products.On("GetForUpdate", ctx, "99").
		Return(nil, fmt.Errorf("product with ID 99 not found: %w", repositories.ErrNotFound)).Once()
	assert.ErrorIs(t, service.DeleteProduct(ctx, "99"), services.ErrProductNotFound)

	store.products.AssertExpectations(t)
	store.orders.AssertExpectations(t)
	store.products.AssertNotCalled(t, "Delete", ctx, "2")
}
