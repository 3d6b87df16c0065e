package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"mandal-ledger-go/internal/database"
	"mandal-ledger-go/internal/models"
)

// isUniqueViolation sniffs a duplicate-key failure out of the driver error.
// Races on unique indexes land here after an optimistic pre-check.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "SQLSTATE 23505")
}

// POST /mandals
func (s *Server) createMandal(c *gin.Context) {
	var input struct {
		Name          string  `json:"name" binding:"required"`
		LocalName     string  `json:"localName"`
		PhoneNumber   string  `json:"phoneNumber" binding:"required"`
		Password      string  `json:"password" binding:"required,min=6"`
		EstablishedOn string  `json:"establishedOn" binding:"required"`
		Hapto         float64 `json:"hapto"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", input.EstablishedOn); err != nil {
		c.JSON(400, gin.H{"error": "invalid_established_on", "message": "expected YYYY-MM-DD"})
		return
	}
	if input.Hapto < 0 {
		c.JSON(400, gin.H{"error": "negative_hapto"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}

	mandal := models.Mandal{
		UUID:          uuid.NewString(),
		Name:          input.Name,
		LocalName:     input.LocalName,
		PhoneNumber:   input.PhoneNumber,
		PasswordHash:  string(hash),
		EstablishedOn: input.EstablishedOn,
		Hapto:         input.Hapto,
		IsActive:      true,
	}
	if err := database.DB.Create(&mandal).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(409, gin.H{"error": "phone_number_taken"})
			return
		}
		logrus.WithError(err).Error("create mandal failed")
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(201, mandal)
}

// GET /mandals
func (s *Server) listMandals(c *gin.Context) {
	var mandals []models.Mandal
	if err := database.DB.Order("created_at desc").Find(&mandals).Error; err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(200, mandals)
}

// PATCH /mandals/:id
func (s *Server) updateMandal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}

	var mandal models.Mandal
	if err := database.DB.First(&mandal, id).Error; err != nil {
		c.JSON(404, gin.H{"error": "mandal_not_found"})
		return
	}

	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if v, ok := input["name"].(string); ok {
		mandal.Name = v
	}
	if v, ok := input["localName"].(string); ok {
		mandal.LocalName = v
	}
	if v, ok := input["isActive"].(bool); ok {
		mandal.IsActive = v
	}
	if v, ok := input["hapto"].(float64); ok {
		if v < 0 {
			c.JSON(400, gin.H{"error": "negative_hapto"})
			return
		}
		mandal.Hapto = v
	}

	if err := database.DB.Save(&mandal).Error; err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(200, mandal)
}

// DELETE /mandals/:id — removal cascades to sub-users, months and ledger rows
// through the database foreign keys.
func (s *Server) deleteMandal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid_id"})
		return
	}

	var mandal models.Mandal
	if err := database.DB.First(&mandal, id).Error; err != nil {
		c.JSON(404, gin.H{"error": "mandal_not_found"})
		return
	}
	if err := database.DB.Delete(&mandal).Error; err != nil {
		logrus.WithError(err).Error("delete mandal failed")
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(200, gin.H{"message": "mandal deleted"})
}
