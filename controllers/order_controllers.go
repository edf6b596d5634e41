package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rizzwaaaan/restaurant-software/models"
	"github.com/rizzwaaaan/restaurant-software/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// CreateOrder -> insert a pending order exactly as given. The total is
// the caller's number and is not recomputed against the menu; the phone
// is not checked against reservations here, the foreign key is the only
// guard (see ErrUnknownPhone mapping).
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type reqBody struct {
		Phone string         `json:"phone" binding:"required"`
		Items datatypes.JSON `json:"items" binding:"required"`
		Total float64        `json:"total"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := models.Order{
		Phone:  req.Phone,
		Items:  req.Items,
		Total:  req.Total,
		Status: "pending",
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			utils.RespondError(c, http.StatusBadRequest, ErrUnknownPhone)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order created (ID=%d) for phone=%s total=%.2f", order.ID, order.Phone, order.Total)

	c.JSON(http.StatusCreated, gin.H{
		"order_id": order.ID,
		"phone":    order.Phone,
	})
}

// GetPendingOrders -> the current tab for a phone: every pending order
// plus the sum of their totals. This is what the payment screen reads.
func (oc *OrderController) GetPendingOrders(c *gin.Context) {
	phone := c.Param("phone")

	// An empty tab serializes as [], not null.
	orders := make([]models.Order, 0)
	if err := oc.DB.
		Where("phone = ? AND status = ?", phone, "pending").
		Order("id asc").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var totalAmount float64
	for _, order := range orders {
		totalAmount += order.Total
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":       orders,
		"total_amount": utils.RoundCents(totalAmount),
	})
}
