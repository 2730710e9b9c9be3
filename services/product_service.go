package services

import (
	"context"
	"math"

	"shophub/models"
	"shophub/repositories"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

func (s *ProductService) GetAllProducts(ctx context.Context, category, search string, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := s.productRepo.FindAll(ctx, category, search, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Title:    req.Title,
		Price:    req.Price,
		Image:    req.Image,
		Category: req.Category,
	}

	if product.Image == "" {
		product.Image = "/placeholder.svg"
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		product.Title = req.Title
	}
	if req.Price.IsPositive() {
		product.Price = req.Price
	}
	if req.Image != "" {
		product.Image = req.Image
	}
	if req.Category != "" {
		product.Category = req.Category
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// SetProductImage swaps the product's image, tracking the hosted asset
// id so the previous upload can be cleaned up.
func (s *ProductService) SetProductImage(ctx context.Context, id int, imageURL, cloudinaryID string) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Image = imageURL
	product.CloudinaryID = cloudinaryID

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	return s.productRepo.Delete(ctx, id)
}
