package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func protectedEngine(role Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/", AuthMiddleware(testSecret), RequireRole(role))
	g.GET("/ping", func(c *gin.Context) {
		p, _ := principalFrom(c)
		c.JSON(200, gin.H{"id": p.ID, "role": string(p.Role)})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := protectedEngine(RoleMandal)
	token := signToken(t, jwt.MapClaims{
		"id":          float64(5),
		"phoneNumber": "9876543210",
		"role":        "mandal",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	rec := get(r, token)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	r := protectedEngine(RoleMandal)

	valid := jwt.MapClaims{
		"id":          float64(5),
		"phoneNumber": "9876543210",
		"role":        "mandal",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}

	cases := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"garbage token", "not.a.jwt"},
		{"wrong secret", signToken(t, valid, "other-secret")},
		{"expired", signToken(t, jwt.MapClaims{
			"id": float64(5), "phoneNumber": "9876543210", "role": "mandal",
			"exp": time.Now().Add(-time.Hour).Unix(),
		}, testSecret)},
		{"unknown role", signToken(t, jwt.MapClaims{
			"id": float64(5), "phoneNumber": "9876543210", "role": "superuser",
			"exp": time.Now().Add(time.Hour).Unix(),
		}, testSecret)},
		{"role mismatch", signToken(t, jwt.MapClaims{
			"id": float64(1), "phoneNumber": "9999999999", "role": "admin",
			"exp": time.Now().Add(time.Hour).Unix(),
		}, testSecret)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := get(r, c.token)
			if rec.Code != 401 {
				t.Fatalf("status = %d, want 401; body %s", rec.Code, rec.Body.String())
			}
		})
	}
}
