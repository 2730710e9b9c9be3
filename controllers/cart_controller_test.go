package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shophub/controllers"
	"shophub/models"
	"shophub/repositories"
	"shophub/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCartStore struct {
	carts map[int][]models.CartLine
}

func (m *memCartStore) Get(_ context.Context, userID int) ([]models.CartLine, error) {
	return m.carts[userID], nil
}

func (m *memCartStore) Save(_ context.Context, userID int, lines []models.CartLine) error {
	m.carts[userID] = lines
	return nil
}

func (m *memCartStore) Clear(_ context.Context, userID int) error {
	delete(m.carts, userID)
	return nil
}

type memProducts struct {
	products map[int]*models.Product
}

func (m *memProducts) FindByID(_ context.Context, id int) (*models.Product, error) {
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrProductNotFound
}

func setupCartTestRouter(userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := &memCartStore{carts: map[int][]models.CartLine{}}
	products := &memProducts{products: map[int]*models.Product{
		1: {ID: 1, Title: "Wireless Headphones", Price: decimal.NewFromFloat(99.99), Image: "/placeholder.svg", Category: "Electronics"},
		3: {ID: 3, Title: "Coffee Mug", Price: decimal.NewFromFloat(14.99), Image: "/placeholder.svg", Category: "Home"},
	}}

	ctrl := controllers.NewCartController(services.NewCartService(store), products)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		// Stand-in for the JWT middleware.
		c.Set("user_id", userID)
		c.Next()
	})

	r.GET("/cart", ctrl.GetCart)
	r.POST("/cart/items", ctrl.AddItem)
	r.PATCH("/cart/items/:id", ctrl.SetQuantity)
	r.DELETE("/cart/items/:id", ctrl.RemoveItem)
	r.DELETE("/cart", ctrl.ClearCart)

	return r
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

type cartResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Items []models.CartLine `json:"items"`
		Total decimal.Decimal   `json:"total"`
	} `json:"data"`
}

func TestCartEndpoints(t *testing.T) {
	router := setupCartTestRouter(1)

	t.Run("empty cart reads back empty", func(t *testing.T) {
		recorder := doJSON(router, http.MethodGet, "/cart", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp cartResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Empty(t, resp.Data.Items)
		assert.Equal(t, "0", resp.Data.Total.String())
	})

	t.Run("adding an unknown product returns 404", func(t *testing.T) {
		recorder := doJSON(router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: 999})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("adding twice bumps the quantity", func(t *testing.T) {
		doJSON(router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: 1})
		recorder := doJSON(router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: 1})
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp cartResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Items, 1)
		assert.Equal(t, 2, resp.Data.Items[0].Quantity)
		assert.Equal(t, "199.98", resp.Data.Total.StringFixed(2))
	})

	t.Run("line snapshots come from the catalog, not the client", func(t *testing.T) {
		recorder := doJSON(router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: 3})
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp cartResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Items, 2)
		assert.Equal(t, "Coffee Mug", resp.Data.Items[1].Title)
		assert.Equal(t, "14.99", resp.Data.Items[1].Price.StringFixed(2))
	})

	t.Run("setting quantity to zero removes the line", func(t *testing.T) {
		recorder := doJSON(router, http.MethodPatch, "/cart/items/3", models.SetQuantityRequest{Quantity: 0})
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp cartResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Items, 1)
		assert.Equal(t, 1, resp.Data.Items[0].ProductID)
	})

	t.Run("delete removes the line unconditionally", func(t *testing.T) {
		recorder := doJSON(router, http.MethodDelete, "/cart/items/1", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp cartResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Empty(t, resp.Data.Items)
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		doJSON(router, http.MethodPost, "/cart/items", models.AddCartItemRequest{ProductID: 1})
		recorder := doJSON(router, http.MethodDelete, "/cart", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		recorder = doJSON(router, http.MethodGet, "/cart", nil)
		var resp cartResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Empty(t, resp.Data.Items)
	})

	t.Run("invalid product id in path is rejected", func(t *testing.T) {
		recorder := doJSON(router, http.MethodPatch, "/cart/items/abc", models.SetQuantityRequest{Quantity: 2})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
