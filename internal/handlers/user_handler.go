package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// ======================================================
// LIST USERS (ADMIN)
// ======================================================
func (h *UserHandler) List(c *gin.Context) {
	role := strings.TrimSpace(c.Query("role"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.User{})

	if role != "" {
		q = q.Where("role = ?", role)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var users []models.User
	if err := q.
		Order("created_at DESC").
		Find(&users).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_users",
		})
		return
	}

	c.JSON(http.StatusOK, users)
}
