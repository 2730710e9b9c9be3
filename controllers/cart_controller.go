package controllers

import (
	"context"
	"errors"
	"strconv"

	"shophub/models"
	"shophub/repositories"
	"shophub/services"

	"github.com/gin-gonic/gin"
)

// ProductFinder resolves the product a cart line snapshots. The cart
// never trusts client-submitted titles or prices.
type ProductFinder interface {
	FindByID(ctx context.Context, id int) (*models.Product, error)
}

type CartController struct {
	cartService *services.CartService
	products    ProductFinder
}

func NewCartController(cartService *services.CartService, products ProductFinder) *CartController {
	return &CartController{cartService: cartService, products: products}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the current user's cart lines and total
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	lines, err := ctrl.cartService.Items(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data": gin.H{
			"items": lines,
			"total": ctrl.cartService.Total(lines),
		},
	})
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a product to the cart, or bump its quantity by one
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	product, err := ctrl.products.FindByID(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to load product"})
		return
	}

	lines, err := ctrl.cartService.AddItem(c.Request.Context(), userID, models.CartLine{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Image:     product.Image,
	})
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Added to cart",
		"data": gin.H{
			"items": lines,
			"total": ctrl.cartService.Total(lines),
		},
	})
}

// SetQuantity godoc
// @Summary Set line quantity
// @Description Set a cart line's quantity; zero removes the line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.SetQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) SetQuantity(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	lines, err := ctrl.cartService.SetQuantity(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart updated",
		"data": gin.H{
			"items": lines,
			"total": ctrl.cartService.Total(lines),
		},
	})
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Description Remove a cart line unconditionally
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil || productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	lines, err := ctrl.cartService.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Removed from cart",
		"data": gin.H{
			"items": lines,
			"total": ctrl.cartService.Total(lines),
		},
	})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every line from the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	if err := ctrl.cartService.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared"})
}
