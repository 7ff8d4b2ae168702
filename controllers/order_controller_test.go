package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hray3182/ordering-app/configs"
	"github.com/hray3182/ordering-app/entity"
	"github.com/hray3182/ordering-app/pkg/logger"
	"github.com/hray3182/ordering-app/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	))

	r := gin.New()
	cfg := &configs.Config{UploadDir: t.TempDir()}
	routes.RegisterRoutes(r, db, cfg, logger.New("test"))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

func TestCheckoutRoundTrip(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/checkout", `{
		"items": [
			{"menuItemId": 1, "name": "Burger", "price": 5.50, "quantity": 2},
			{"menuItemId": 2, "name": "Fries", "price": 2.00, "quantity": 1}
		]
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID          uint    `json:"id"`
		OrderNumber string  `json:"orderNumber"`
		Status      string  `json:"status"`
		Total       float64 `json:"total"`
		Paid        bool    `json:"paid"`
	}
	decode(t, w, &created)
	assert.Equal(t, "000001", created.OrderNumber)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, 13.00, created.Total)
	assert.False(t, created.Paid)

	// customer confirmation lookup by public number
	w = do(t, r, http.MethodGet, "/orders/number/000001", "")
	require.Equal(t, http.StatusOK, w.Code)
	var byNumber struct {
		ID    uint `json:"id"`
		Items []struct {
			MenuItemName string  `json:"menuItemName"`
			Quantity     int     `json:"quantity"`
			Price        float64 `json:"price"`
		} `json:"items"`
	}
	decode(t, w, &byNumber)
	assert.Equal(t, created.ID, byNumber.ID)
	require.Len(t, byNumber.Items, 2)
	assert.Equal(t, "Burger", byNumber.Items[0].MenuItemName)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/checkout", `{"items": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Items []json.RawMessage `json:"items"`
	}
	decode(t, w, &listing)
	assert.Empty(t, listing.Items)
}

func TestUpdateOrderStatusAndPaid(t *testing.T) {
	r := setupRouter(t)
	w := do(t, r, http.MethodPost, "/checkout", `{"items":[{"name":"Tea","price":1.5,"quantity":1}]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPatch, "/orders/1", `{"paid": true}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		Status string `json:"status"`
		Paid   bool   `json:"paid"`
	}
	decode(t, w, &updated)
	assert.True(t, updated.Paid)
	assert.Equal(t, "pending", updated.Status)

	w = do(t, r, http.MethodPatch, "/orders/1", `{"status": "shipped"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPatch, "/orders/999", `{"paid": true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderNotFound(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/orders/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/orders/number/000042", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
