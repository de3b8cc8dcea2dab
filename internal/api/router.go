package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tutorhive/tutor-booking-backend/internal/auth"
	"github.com/tutorhive/tutor-booking-backend/internal/booking"
	bookingHttp "github.com/tutorhive/tutor-booking-backend/internal/booking/http"
	"github.com/tutorhive/tutor-booking-backend/internal/file"
	fileHttp "github.com/tutorhive/tutor-booking-backend/internal/file/http"
	"github.com/tutorhive/tutor-booking-backend/internal/provider"
	providerHttp "github.com/tutorhive/tutor-booking-backend/internal/provider/http"
	scheduleHttp "github.com/tutorhive/tutor-booking-backend/internal/schedule/http"
	"github.com/tutorhive/tutor-booking-backend/internal/user"
	userHttp "github.com/tutorhive/tutor-booking-backend/internal/user/http"
)

// Config collects the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string // comma-separated allowed origins in production

	DefaultTimezone string

	UserService     user.Service
	ProviderService provider.Service
	BookingService  booking.Service
	FileService     file.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine. It assembles the global
// middleware (CORS, Logger, Recovery) and registers routes for every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Timezone"}
	r.Use(cors.New(corsConfig))

	// authMiddleware validates the JWT; sysAdminMiddleware additionally
	// requires the System Admin flag on the account.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	sysAdminMiddleware := RequireSystemAdmin(cfg.UserService)

	fileHandler := fileHttp.NewHandler(cfg.FileService)
	userHandler := userHttp.NewUserHandler(cfg.UserService, cfg.JWTManager)
	providerHandler := providerHttp.NewHandler(cfg.ProviderService, fileHandler)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ProviderService, cfg.DefaultTimezone)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, sysAdminMiddleware)
		providerHttp.RegisterRoutes(v1, providerHandler, authMiddleware, sysAdminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, sysAdminMiddleware)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler)
		fileHttp.RegisterRoutes(v1, fileHandler)
	}

	return r
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
