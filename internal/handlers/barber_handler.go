package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Gestão administrativa de barbeiros: cria o User (role = barber)
// junto com o perfil público.
type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

type BarberCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	Bio       string `json:"bio"`
	Specialty string `json:"specialty"`
}

type BarberUpdateRequest struct {
	Bio       *string `json:"bio"`
	Specialty *string `json:"specialty"`
	Active    *bool   `json:"active"`
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleBarber,
	}

	profile := models.BarberProfile{
		Bio:       req.Bio,
		Specialty: req.Specialty,
		Active:    true,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(&profile).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barber"})
		return
	}

	writeAudit(h.db, middleware.UserID(c), "barber_created", "user", user.ID, nil)

	profile.User = user
	c.JSON(http.StatusCreated, profile)
}

func (h *BarberHandler) Update(c *gin.Context) {
	barberID, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return
	}

	var profile models.BarberProfile
	if err := h.db.Where("user_id = ?", barberID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return
	}

	var req BarberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Specialty != nil {
		profile.Specialty = *req.Specialty
	}
	if req.Active != nil {
		profile.Active = *req.Active
	}

	if err := h.db.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_barber"})
		return
	}

	writeAudit(h.db, middleware.UserID(c), "barber_updated", "user", barberID, req)

	c.JSON(http.StatusOK, profile)
}
