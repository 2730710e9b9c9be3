package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"shophub/models"
	"shophub/repositories"
	"shophub/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService *services.ProductService
	cloudinary     *models.CloudinaryService
}

func NewProductController(productService *services.ProductService, cloudinary *models.CloudinaryService) *ProductController {
	return &ProductController{productService: productService, cloudinary: cloudinary}
}

// GetAllProducts godoc
// @Summary List products
// @Description List products with optional category filter and title search
// @Tags Products
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param category query string false "Filter by category"
// @Param search query string false "Search by title"
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	category := c.Query("category")
	search := c.Query("search")

	response, err := ctrl.productService.GetAllProducts(c.Request.Context(), category, search, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get products"})
		return
	}

	c.JSON(200, response)
}

// GetProductByID godoc
// @Summary Get product
// @Description Get a single product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Title, price, and category are required"})
		return
	}

	product, err := ctrl.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Product created successfully",
		"data":    product,
	})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Update an existing product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Product data"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.productService.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Delete a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	if err := ctrl.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product deleted successfully",
		"data":    gin.H{"id": id},
	})
}

// UploadProductImage godoc
// @Summary Upload product image
// @Description Upload a product image and attach it to the product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Router /admin/products/{id}/image [post]
func (ctrl *ProductController) UploadProductImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	if ctrl.cloudinary == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Image uploads not configured"})
		return
	}

	product, err := ctrl.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image file required"})
		return
	}

	if err := ctrl.cloudinary.ValidateImageFile(fileHeader); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to read file"})
		return
	}
	defer file.Close()

	imageURL, publicID, err := ctrl.cloudinary.UploadImage(c.Request.Context(), file, fileHeader.Filename, "products")
	if err != nil {
		log.Println("Product image upload error:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to upload image"})
		return
	}

	oldPublicID := product.CloudinaryID

	updated, err := ctrl.productService.SetProductImage(c.Request.Context(), id, imageURL, publicID)
	if err != nil {
		ctrl.cloudinary.DeleteImage(c.Request.Context(), publicID)
		c.JSON(500, gin.H{"success": false, "message": "Failed to attach image"})
		return
	}

	if oldPublicID != "" {
		ctrl.cloudinary.DeleteImage(c.Request.Context(), oldPublicID)
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Image uploaded",
		"data":    updated,
	})
}
