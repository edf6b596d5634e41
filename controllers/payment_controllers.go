package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rizzwaaaan/restaurant-software/models"
	"github.com/rizzwaaaan/restaurant-software/utils"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// CreatePayment -> settle the whole tab for a phone in one transaction:
// lock the pending orders, charge their sum, flip them to completed and
// close the reservation. Settlement is simulated, so the payment row is
// written with status 'success' directly.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	type reqBody struct {
		Phone  string `json:"phone" binding:"required"`
		Method string `json:"method" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tx := pc.DB.Begin()
	if tx.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, tx.Error)
		return
	}

	// Row locks serialize concurrent settlements for the same phone:
	// the amount must be computed from exactly the set of orders that
	// gets transitioned below.
	var orders []models.Order
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("phone = ? AND status = ?", req.Phone, "pending").
		Order("id asc").
		Find(&orders).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if len(orders) == 0 {
		tx.Rollback()
		utils.RespondError(c, http.StatusBadRequest, ErrNoPendingOrders)
		return
	}

	var totalAmount float64
	orderIDs := make([]uint, 0, len(orders))
	for _, order := range orders {
		totalAmount += order.Total
		orderIDs = append(orderIDs, order.ID)
	}
	totalAmount = utils.RoundCents(totalAmount)

	payment := models.Payment{
		Phone:  req.Phone,
		Amount: totalAmount,
		Method: req.Method,
		Status: "success",
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Model(&models.Order{}).
		Where("id IN ?", orderIDs).
		Update("status", "completed").Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Close the reservation too, when one exists. Only orders are
	// required for settlement; an orphaned tab is not an error.
	var reservation models.Reservation
	err := tx.Where("phone = ?", req.Phone).First(&reservation).Error
	if err == nil {
		reservation.Status = "completed"
		if err := tx.Save(&reservation).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Payment settled (ID=%d) for phone=%s amount=%s via %s",
		payment.ID, payment.Phone, utils.FormatAmount(payment.Amount), payment.Method)

	c.JSON(http.StatusOK, gin.H{
		"status":       payment.Status,
		"total_amount": totalAmount,
	})
}
