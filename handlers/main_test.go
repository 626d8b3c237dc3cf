package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/SoloAk21/ecommerce-backend/config"
	"github.com/SoloAk21/ecommerce-backend/models"
	"github.com/SoloAk21/ecommerce-backend/routers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T, cfg config.Config) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return routers.SetupRouters(db, cfg), db
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{FirstName: "Jane", LastName: "Doe", PhoneNumber: "0912345678"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB) models.Category {
	t.Helper()
	category := models.Category{Name: "electronics"}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, quantity int) models.Product {
	t.Helper()
	category := seedCategory(t, db)
	product := models.Product{
		Name:       "keyboard",
		Price:      1200,
		Quantity:   quantity,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint) models.Order {
	t.Helper()
	order := models.Order{UserID: userID}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func productQuantity(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", id).Error)
	return product.Quantity
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
