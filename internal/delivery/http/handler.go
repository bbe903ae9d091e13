package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orders-api/internal/auth"
	"orders-api/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	authSvc service.Auth
	orders  service.Order
	tokens  *auth.JWTManager
}

func NewHandler(authSvc service.Auth, orders service.Order, tokens *auth.JWTManager) *Handler {
	return &Handler{authSvc: authSvc, orders: orders, tokens: tokens}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	router.POST("/register", h.Register)
	router.POST("/login", h.Login)

	api := router.Group("/api", h.userIdentity)
	{
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders", h.GetAllOrders)
		api.GET("/orders/:id", h.GetOrderById)
		api.PUT("/orders/:id", h.UpdateOrder)
		api.DELETE("/orders/:id", h.DeleteOrder)
		api.PATCH("/orders/:id/status", h.UpdateOrderStatus)

		api.POST("/orders/:id/tasks", h.LinkTasks)
		api.PUT("/orders/:id/tasks/:taskId", h.UpdateTask)
		api.DELETE("/orders/:id/tasks/:taskId", h.DeleteTask)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
