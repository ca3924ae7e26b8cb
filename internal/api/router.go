package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roomly/booking-backend/internal/auth"
	"github.com/roomly/booking-backend/internal/booking"
	bookingHttp "github.com/roomly/booking-backend/internal/booking/http"
	"github.com/roomly/booking-backend/internal/identity"
	"github.com/roomly/booking-backend/internal/user"
)

// Config holds the dependencies needed to assemble the router.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	UserService    user.Service
	BookingService booking.Service
	JWTManager     *auth.JWTManager
	Holder         *identity.Holder
	Logger         *zap.Logger
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Web front-end dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks the admin role from the token claims.
	adminMiddleware := RequireAdmin()

	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager, cfg.Holder, cfg.Logger)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/auth/logout", authMiddleware, authHandler.Logout)
		v1.GET("/me", authMiddleware, authHandler.Me)

		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
	}

	return r
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
