package http

import (
	"github.com/gin-gonic/gin"

	"mandal-ledger-go/internal/database"
	"mandal-ledger-go/internal/models"
)

// POST /subusers
func (s *Server) createSubUser(c *gin.Context) {
	p, _ := principalFrom(c)

	var input struct {
		Name        string `json:"name" binding:"required"`
		PhoneNumber string `json:"phoneNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	sub := models.SubUser{
		MandalID:    p.ID,
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
	}
	if err := database.DB.Create(&sub).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(409, gin.H{"error": "phone_number_taken"})
			return
		}
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(201, sub)
}

// GET /subusers
func (s *Server) listSubUsers(c *gin.Context) {
	p, _ := principalFrom(c)

	var subs []models.SubUser
	if err := database.DB.Where("mandal_id = ?", p.ID).Order("created_at asc").Find(&subs).Error; err != nil {
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(200, subs)
}
