package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rizzwaaaan/restaurant-software/models"
	"github.com/rizzwaaaan/restaurant-software/utils"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// CreateReservation -> create-or-fetch by phone.
// A phone that already has a reservation gets the existing record back
// untouched; otherwise a new row is inserted with status 'pending'.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	type reqBody struct {
		Name            string     `json:"name" binding:"required"`
		People          int        `json:"people" binding:"required"`
		Phone           string     `json:"phone" binding:"required"`
		Present         string     `json:"present"`
		ReservationDate *time.Time `json:"reservation_date"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.People <= 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("people must be a positive number"))
		return
	}

	var existing models.Reservation
	err := rc.DB.Where("phone = ?", req.Phone).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"id":      existing.ID,
			"present": existing.Present,
			"message": "Existing reservation found",
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	present := req.Present
	if present == "" {
		present = "no"
	}

	reservation := models.Reservation{
		Name:            req.Name,
		People:          req.People,
		Phone:           req.Phone,
		Status:          "pending",
		Present:         present,
		ReservationDate: req.ReservationDate,
	}

	if err := rc.DB.Create(&reservation).Error; err != nil {
		// Check-then-insert race: a concurrent caller won the insert.
		// The unique constraint on phone is the backstop, so fall back
		// to a fresh lookup instead of surfacing the conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if lookupErr := rc.DB.Where("phone = ?", req.Phone).First(&existing).Error; lookupErr == nil {
				c.JSON(http.StatusOK, gin.H{
					"id":      existing.ID,
					"present": existing.Present,
					"message": "Existing reservation found",
				})
				return
			}
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New reservation created (ID=%d) for phone=%s", reservation.ID, reservation.Phone)

	c.JSON(http.StatusCreated, gin.H{
		"id":      reservation.ID,
		"status":  reservation.Status,
		"present": reservation.Present,
	})
}

// CheckReservation -> pure lookup by phone. An unknown phone is a
// normal outcome for callers, so the 404 carries a present:"no" body
// instead of an error envelope.
func (rc *ReservationController) CheckReservation(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("phone is required"))
		return
	}

	var reservation models.Reservation
	if err := rc.DB.Where("phone = ?", phone).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"present": "no"})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// UpdateReservationStatus -> overwrite status with the supplied value
// verbatim. Any text is accepted.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	phone := c.Param("phone")

	type reqBody struct {
		Status string `json:"status" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.Where("phone = ?", phone).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("reservation not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	reservation.Status = req.Status
	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reservation status updated",
		"status":  reservation.Status,
	})
}
