package routes

import (
	"github.com/hray3182/ordering-app/configs"
	"github.com/hray3182/ordering-app/controllers"
	"github.com/hray3182/ordering-app/pkg/logger"
	"github.com/hray3182/ordering-app/pkg/storage"
	"github.com/hray3182/ordering-app/repository"
	"github.com/hray3182/ordering-app/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *logger.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	images := storage.NewLocal(cfg.UploadDir, log)

	// Repositories
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	catSvc := services.NewCategoryService(db, catRepo, menuRepo, images, log)
	menuSvc := services.NewMenuService(menuRepo, catRepo, images, log)
	orderSvc := services.NewOrderService(db, orderRepo, log)

	// Controllers
	catCtrl := controllers.NewCategoryController(catSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Catalog (staff manage, customers browse)
	cat := r.Group("/categories")
	{
		cat.GET("", catCtrl.List)
		cat.POST("", catCtrl.Create)
		cat.GET("/:id", catCtrl.Get)
		cat.PATCH("/:id", catCtrl.Update)
		cat.DELETE("/:id", catCtrl.Delete)
	}

	menu := r.Group("/menu")
	{
		menu.GET("", menuCtrl.List) // ?categoryId=
		menu.POST("", menuCtrl.Create)
		menu.GET("/:id", menuCtrl.Get)
		menu.PATCH("/:id", menuCtrl.Update)
		menu.DELETE("/:id", menuCtrl.Delete)
	}

	// Orders
	r.POST("/checkout", orderCtrl.Checkout)
	orders := r.Group("/orders")
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id", orderCtrl.Update)
		orders.GET("/number/:orderNumber", orderCtrl.DetailByNumber)
	}
}
