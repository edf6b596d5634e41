package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rizzwaaaan/restaurant-software/controllers"
	"github.com/rizzwaaaan/restaurant-software/middlewares"
	"github.com/rizzwaaaan/restaurant-software/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	reservationCtrl := controllers.NewReservationController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	paymentCtrl := controllers.NewPaymentController(db)

	r.GET("/ping", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "pong", nil)
	})

	api := r.Group("/api")
	{
		// RESERVATIONS
		api.POST("/reservations", reservationCtrl.CreateReservation)
		api.GET("/reservations/check", reservationCtrl.CheckReservation)
		api.PATCH("/reservations/:phone/status", reservationCtrl.UpdateReservationStatus)

		// MENU (read-only catalog)
		api.GET("/menu", menuCtrl.GetMenu)

		// ORDERS
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:phone", orderCtrl.GetPendingOrders)

		// PAYMENTS
		api.POST("/payments", paymentCtrl.CreatePayment)
	}

	return r
}
