package controllers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"shophub/models"
	"shophub/repositories"
	"shophub/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// GetHistory godoc
// @Summary Get order history
// @Description Get the current user's orders, newest first, with line items
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /orders [get]
func (ctrl *OrderController) GetHistory(c *gin.Context) {
	userID := c.GetInt("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, total, err := ctrl.orderService.History(c.Request.Context(), userID, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load order history"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order history retrieved",
		"data":    orders,
		"meta": gin.H{
			"page":        page,
			"limit":       limit,
			"total_items": total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// GetOrder godoc
// @Summary Get own order
// @Description Get one of the current user's orders with items and
// @Description tracking history (newest entry first)
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	userID := c.GetInt("user_id")
	orderID := c.Param("id")

	order, err := ctrl.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil || order.UserID != userID {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	// Tracking is stored in audit order; the history view shows the
	// latest change first.
	reversed := make([]models.OrderTrackingEntry, len(order.Tracking))
	for i, e := range order.Tracking {
		reversed[len(order.Tracking)-1-i] = e
	}
	order.Tracking = reversed

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order retrieved",
		"data":    order,
	})
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by order ID"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	status := strings.TrimSpace(c.Query("status"))
	search := strings.TrimSpace(c.Query("search"))

	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if status != "" && status != "All" {
		whereConditions = append(whereConditions, fmt.Sprintf("o.status = $%d", argIndex))
		args = append(args, status)
		argIndex++
	}
	if search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("CAST(o.id AS TEXT) LIKE $%d", argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	err := models.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM orders o"+whereClause, args...).Scan(&total)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to count orders"})
		return
	}

	query := fmt.Sprintf(`
		SELECT
			o.id,
			o.user_id,
			COALESCE(u.email, ''),
			COALESCE(p.full_name, ''),
			o.status,
			o.total_amount,
			o.created_at,
			(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) as total_items
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		LEFT JOIN profiles p ON o.user_id = p.user_id
		%s
		ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d
	`, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(context.Background(), query, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Query error: " + err.Error()})
		return
	}
	defer rows.Close()

	orders := []gin.H{}
	for rows.Next() {
		var (
			id, email, fullName, orderStatus string
			userID, totalItems               int
			totalAmount                      decimal.Decimal
			createdAt                        time.Time
		)

		if err := rows.Scan(&id, &userID, &email, &fullName, &orderStatus, &totalAmount, &createdAt, &totalItems); err != nil {
			continue
		}

		orders = append(orders, gin.H{
			"id":            id,
			"user_id":       userID,
			"email":         email,
			"customer_name": fullName,
			"status":        orderStatus,
			"total_amount":  totalAmount,
			"total_items":   totalItems,
			"created_at":    createdAt,
		})
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
		"meta": gin.H{
			"page":        page,
			"limit":       limit,
			"total_items": total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get order details with items and full audit trail (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	orderID := c.Param("id")

	order, err := ctrl.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Update order status and append a tracking entry (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	err := ctrl.orderService.UpdateStatus(c.Request.Context(), orderID, req.Status, req.StatusDescription)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(400, gin.H{"success": false, "message": "Invalid status. Must be one of: " + strings.Join(models.OrderStatuses, ", ")})
			return
		}
		if errors.Is(err, repositories.ErrOrderNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"data": gin.H{
			"id":     orderID,
			"status": req.Status,
		},
	})
}
