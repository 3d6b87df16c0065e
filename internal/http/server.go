package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"

	"mandal-ledger-go/internal/config"
)

type Server struct {
	cfg       *config.Config
	validator *gojsonschema.Schema
}

func NewServer(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(logging())

	loader := gojsonschema.NewReferenceLoader("file://" + cfg.SchemaDir + "/member_data.schema.json")
	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		panic(err)
	}

	s := &Server{cfg: cfg, validator: schema}

	// Auth
	r.POST("/auth/admin/login", s.adminLogin)
	r.POST("/auth/login", s.mandalLogin)

	// Admin-scoped mandal management
	admin := r.Group("/mandals")
	admin.Use(AuthMiddleware(cfg.JWTSecret), RequireRole(RoleAdmin))
	{
		admin.POST("", s.createMandal)
		admin.GET("", s.listMandals)
		admin.PATCH("/:id", s.updateMandal)
		admin.DELETE("/:id", s.deleteMandal)
	}

	// Mandal-scoped ledger operations; every read/write is scoped to the
	// principal's mandal id.
	m := r.Group("/")
	m.Use(AuthMiddleware(cfg.JWTSecret), RequireRole(RoleMandal))
	{
		m.POST("/subusers", s.createSubUser)
		m.GET("/subusers", s.listSubUsers)

		m.POST("/month", s.openMonth)
		m.GET("/month", s.listMonths)

		m.POST("/memberData", s.upsertMemberData)
		m.GET("/memberData", s.listMemberData)
		m.POST("/memberData/initialize", s.initializeMemberData)

		m.GET("/summary", s.getSummary)
		m.GET("/analytics/collection", s.getCollectionRate)
		m.GET("/reports/annual.pdf", s.annualReportPDF)
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

func cors(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, PATCH, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
