package routes

import (
	"log"

	"shophub/controllers"
	"shophub/middleware"
	"shophub/models"
	"shophub/repositories"
	"shophub/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	cartRepo := repositories.NewCartRepository()
	orderRepo := repositories.NewOrderRepository()
	productRepo := repositories.NewProductRepository()
	prefRepo := repositories.NewPreferenceRepository()

	cloudinarySvc, err := models.NewCloudinaryService()
	if err != nil {
		log.Println("Cloudinary not configured, image uploads disabled:", err)
		cloudinarySvc = nil
	}

	emailSvc, err := models.NewEmailService()
	var mailer services.ConfirmationMailer
	if err != nil {
		log.Println("SMTP not configured, order confirmations disabled:", err)
	} else {
		mailer = emailSvc
	}

	cartService := services.NewCartService(cartRepo)
	checkoutService := services.NewCheckoutService(cartRepo, orderRepo, mailer)
	orderService := services.NewOrderService(orderRepo)

	authCtrl := controllers.NewAuthController(services.NewAuthService(), cloudinarySvc)
	productCtrl := controllers.NewProductController(services.NewProductService(), cloudinarySvc)
	cartCtrl := controllers.NewCartController(cartService, productRepo)
	checkoutCtrl := controllers.NewCheckoutController(checkoutService)
	orderCtrl := controllers.NewOrderController(orderService)
	prefCtrl := controllers.NewPreferenceController(prefRepo)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/profile/avatar", authCtrl.UpdateAvatar)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:id", cartCtrl.SetQuantity)
		auth.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.POST("/checkout", checkoutCtrl.Checkout)

		auth.GET("/orders", orderCtrl.GetHistory)
		auth.GET("/orders/:id", orderCtrl.GetOrder)

		auth.GET("/preferences/language", prefCtrl.GetLanguage)
		auth.PUT("/preferences/language", prefCtrl.SetLanguage)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		admin.POST("/products/:id/image", productCtrl.UploadProductImage)
	}
}
