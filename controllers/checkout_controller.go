package controllers

import (
	"errors"

	"shophub/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutController(checkoutService *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: checkoutService}
}

// Checkout godoc
// @Summary Checkout
// @Description Convert the current cart into a persisted order. The
// @Description total is recomputed server-side and the cart is cleared
// @Description only after the order commits.
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	userID := c.GetInt("user_id")
	email := c.GetString("user_email")

	order, err := ctrl.checkoutService.Checkout(c.Request.Context(), userID, email)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Error processing order. Please try again later"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data":    order,
	})
}
