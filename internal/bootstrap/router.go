package bootstrap

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/polarstudio/showroom-booking-backend/config"
	httpapi "github.com/polarstudio/showroom-booking-backend/internal/api/http"
	authmw "github.com/polarstudio/showroom-booking-backend/internal/auth/middleware"
	bookinghttp "github.com/polarstudio/showroom-booking-backend/internal/booking/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	AuthClient  *fbauth.Client
	Profiles    authmw.ProfileGetter
	Service     bookinghttp.BookingService
	RateLimit   config.RateLimitConfig
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(rateLimitMiddleware(dep.RateLimit))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(authmw.FirebaseAuthMiddleware(dep.AuthClient))

	handler := bookinghttp.NewHandler(dep.Service)
	handler.Register(api, authmw.AdminOnly(dep.Profiles))

	return r
}
