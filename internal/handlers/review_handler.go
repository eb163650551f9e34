package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type ReviewCreateRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) List(c *gin.Context) {
	barberID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var reviews []models.Review
	if err := h.db.
		Preload("Client").
		Where("barber_id = ?", barberID).
		Order("created_at DESC").
		Limit(50).
		Find(&reviews).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Create registra a avaliação e recalcula a média simples do perfil.
func (h *ReviewHandler) Create(c *gin.Context) {
	clientID := middleware.UserID(c)

	barberID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var req ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var profile models.BarberProfile
	if err := h.db.Where("user_id = ?", barberID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return
	}

	review := models.Review{
		BarberID: barberID,
		ClientID: clientID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		total := profile.RatingAvg*float64(profile.RatingCount) + float64(req.Rating)
		profile.RatingCount++
		profile.RatingAvg = total / float64(profile.RatingCount)

		return tx.Save(&profile).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}
