package routes

import (
	"context"
	"net/http"

	"github.com/ahmadnzr/fintrack-by-ai/config"
	"github.com/ahmadnzr/fintrack-by-ai/controllers"
	"github.com/ahmadnzr/fintrack-by-ai/middleware"
	"github.com/ahmadnzr/fintrack-by-ai/services"
	"github.com/ahmadnzr/fintrack-by-ai/services/logger"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/ahmadnzr/fintrack-by-ai/docs"
)

// SetupRoutes wires every service and controller and mounts the /api/v1
// surface. The returned booking service is also the cron sweeper's handle.
func SetupRoutes(router *gin.Engine, db *gorm.DB, rdb *redis.Client, m *melody.Melody) *services.BookingService {
	log := logger.NewDefaultLogger(logger.InfoLevel)
	notifier := services.NewWSNotifier(m)

	userService := services.NewUserService(db, log)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db)
	facilityService := services.NewFacilityService(db)
	roomService := services.NewRoomService(db, notifier)
	bookingService := services.NewBookingService(db, log, notifier, rdb)
	insightService := services.NewInsightService(db, log)

	authController := controllers.NewAuthController(userService)
	userController := controllers.NewUserController(userService)
	categoryController := controllers.NewCategoryController(categoryService)
	transactionController := controllers.NewTransactionController(transactionService)
	facilityController := controllers.NewFacilityController(facilityService)
	roomController := controllers.NewRoomController(roomService, rdb)
	bookingController := controllers.NewBookingController(bookingService, rdb)
	insightController := controllers.NewInsightController(insightService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)

	auth := v1.Group("/")
	auth.Use(middleware.AuthMiddleware())

	auth.GET("/user/settings", userController.GetSettings)
	auth.PUT("/user/settings", userController.UpdateSettings)

	auth.GET("/categories", categoryController.List)
	auth.GET("/categories/:id", categoryController.Get)
	auth.POST("/categories", categoryController.Create)
	auth.PUT("/categories/:id", categoryController.Update)
	auth.DELETE("/categories/:id", categoryController.Delete)

	auth.GET("/transactions", transactionController.List)
	auth.GET("/transactions/:id", transactionController.Get)
	auth.POST("/transactions", transactionController.Create)
	auth.PUT("/transactions/:id", transactionController.Update)
	auth.DELETE("/transactions/:id", transactionController.Delete)

	auth.GET("/facilities", facilityController.List)
	auth.GET("/facilities/:id", facilityController.Get)
	auth.POST("/facilities", facilityController.Create)
	auth.PUT("/facilities/:id", facilityController.Update)
	auth.DELETE("/facilities/:id", facilityController.Delete)

	auth.GET("/rooms", roomController.List)
	auth.GET("/rooms/:id", roomController.Get)
	auth.POST("/rooms", roomController.Create)
	auth.PUT("/rooms/:id", roomController.Update)
	auth.DELETE("/rooms/:id", roomController.Delete)
	auth.PUT("/rooms/:id/status", roomController.SetStatus)

	auth.GET("/bookings", bookingController.List)
	auth.GET("/bookings/:id", bookingController.Get)
	auth.POST("/bookings", bookingController.Create)
	auth.PUT("/bookings/:id", bookingController.Update)
	auth.DELETE("/bookings/:id", bookingController.Delete)

	auth.POST("/insights/financial", insightController.Financial)

	auth.POST("/uploads/attachment", uploadAttachment)

	return bookingService
}

// uploadAttachment godoc
// @Summary Upload a transaction attachment
// @Tags uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Attachment file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /uploads/attachment [post]
func uploadAttachment(c *gin.Context) {
	if config.Cloudinary == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Attachment storage is not configured"}})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "No file provided"}})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Could not read file"}})
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "attachments"})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Upload failed"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"url": resp.SecureURL},
	})
}
