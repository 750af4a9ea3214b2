package services

import (
	"context"
	"strings"

	"storetrack/internal/models"
	"storetrack/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	store repositories.Store
}

// NewProductService creates a new ProductService.
func NewProductService(store repositories.Store) *ProductService {
	return &ProductService{
		store: store,
	}
}

func withStockStatus(products []models.Product) []models.Product {
	for i := range products {
		products[i].StockStatus = products[i].StockLevel()
	}
	return products
}

// GetAllProducts retrieves products, optionally filtered by name or low stock.
func (s *ProductService) GetAllProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	products, err := s.store.Products().List(ctx, filter)
	if err != nil {
		return nil, storeError("list products", err, nil)
	}
	return withStockStatus(products), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.store.Products().GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get product", err, ErrProductNotFound)
	}
	product.StockStatus = product.StockLevel()
	return product, nil
}

func validateProduct(product *models.Product) error {
	if err := checkName(product.Name, "required", ErrInvalidProductName); err != nil {
		return err
	}
	if product.Price.IsNegative() {
		return ErrInvalidProductPrice
	}
	if err := check(product.Stock, "gte=0", ErrInvalidStock); err != nil {
		return err
	}
	return check(product.MinStock, "gte=0", ErrInvalidMinStock)
}

// CreateProduct validates and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	product.Name = strings.TrimSpace(product.Name)
	if err := s.store.Products().Create(ctx, product); err != nil {
		return storeError("create product", err, nil)
	}
	product.StockStatus = product.StockLevel()
	return nil
}

// UpdateProduct validates and overwrites an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	product.Name = strings.TrimSpace(product.Name)
	if err := s.store.Products().Update(ctx, product); err != nil {
		return storeError("update product", err, ErrProductNotFound)
	}
	product.StockStatus = product.StockLevel()
	return nil
}

// DeleteProduct deletes a product that no order references.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	err := s.store.WithinTransaction(ctx, func(tx repositories.Store) error {
		if _, err := tx.Products().GetForUpdate(ctx, id); err != nil {
			return storeError("get product", err, ErrProductNotFound)
		}
		refs, err := tx.Orders().CountByProduct(ctx, id)
		if err != nil {
			return storeError("count product orders", err, nil)
		}
		if refs > 0 {
			return ErrProductInUse
		}
		return storeError("delete product", tx.Products().Delete(ctx, id), ErrProductNotFound)
	})
	return storeError("delete product", err, nil)
}
