package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"mandal-ledger-go/internal/database"
	"mandal-ledger-go/internal/models"
)

// Role is the closed set of caller kinds. Anything else is rejected at the
// authorization boundary.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMandal Role = "mandal"
)

func parseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleMandal:
		return RoleMandal, true
	}
	return "", false
}

// Principal is the authenticated caller, built once by the middleware and
// passed to handlers through the request context. Mandal-scoped handlers use
// ID to scope every read and write.
type Principal struct {
	ID          uint
	PhoneNumber string
	Role        Role
}

type AuthResponse struct {
	Token string `json:"token"`
}

func (s *Server) issueToken(p Principal) (string, error) {
	claims := jwt.MapClaims{
		"id":          p.ID,
		"phoneNumber": p.PhoneNumber,
		"role":        string(p.Role),
		"exp":         time.Now().Add(s.cfg.TokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// POST /auth/admin/login
func (s *Server) adminLogin(c *gin.Context) {
	var input struct {
		PhoneNumber string `json:"phoneNumber" binding:"required"`
		Password    string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var admin models.Admin
	if err := database.DB.Where("phone_number = ?", input.PhoneNumber).First(&admin).Error; err != nil {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := s.issueToken(Principal{ID: admin.ID, PhoneNumber: admin.PhoneNumber, Role: RoleAdmin})
	if err != nil {
		logrus.WithError(err).Error("token signing failed")
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(200, AuthResponse{Token: token})
}

// POST /auth/login (mandal credentials)
func (s *Server) mandalLogin(c *gin.Context) {
	var input struct {
		PhoneNumber string `json:"phoneNumber" binding:"required"`
		Password    string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	var mandal models.Mandal
	if err := database.DB.Where("phone_number = ?", input.PhoneNumber).First(&mandal).Error; err != nil {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	}
	if !mandal.IsActive {
		c.JSON(401, gin.H{"error": "mandal_inactive"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(mandal.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(401, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := s.issueToken(Principal{ID: mandal.ID, PhoneNumber: mandal.PhoneNumber, Role: RoleMandal})
	if err != nil {
		logrus.WithError(err).Error("token signing failed")
		c.JSON(500, gin.H{"error": "internal_server_error"})
		return
	}
	c.JSON(200, AuthResponse{Token: token})
}
