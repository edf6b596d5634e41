package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rizzwaaaan/restaurant-software/models"
	"github.com/rizzwaaaan/restaurant-software/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenu -> list catalog items, optionally filtered by exact-match
// category and course. course=all means no course filter.
func (mc *MenuController) GetMenu(c *gin.Context) {
	category := c.Query("category")
	course := c.Query("course")

	query := mc.DB.Order("id asc")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if course != "" && course != "all" {
		query = query.Where("course = ?", course)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
