package services

import (
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/hray3182/ordering-app/entity"
	"github.com/hray3182/ordering-app/pkg/logger"
	"github.com/hray3182/ordering-app/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection: the pool would otherwise hand every connection
	// its own private in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newOrderService(t *testing.T) *OrderService {
	t.Helper()
	db := newTestDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db), logger.New("test"))
}

// fakeImages records store interactions instead of touching disk.
type fakeImages struct {
	saved   int
	removed []string
}

func (f *fakeImages) Save(file *multipart.FileHeader) (string, error) {
	f.saved++
	return fmt.Sprintf("/uploads/menu-items/fake-%d-%s", f.saved, file.Filename), nil
}

func (f *fakeImages) Remove(path string) {
	if path != "" {
		f.removed = append(f.removed, path)
	}
}

func newCatalog(t *testing.T, db *gorm.DB) (*CategoryService, *MenuService, *fakeImages) {
	t.Helper()
	images := &fakeImages{}
	lg := logger.New("test")
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	return NewCategoryService(db, catRepo, menuRepo, images, lg),
		NewMenuService(menuRepo, catRepo, images, lg),
		images
}

func mustCheckout(t *testing.T, svc *OrderService, lines ...CartLine) *OrderDetail {
	t.Helper()
	out, err := svc.Checkout(&CheckoutReq{Items: lines})
	require.NoError(t, err)
	return out
}

func uintPtr(v uint) *uint        { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
