package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers endpoints reachable without a token.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Health.WelcomeHandler)
	r.GET("/health", hb.Health.HealthHandler)
	r.GET("/service", hb.Booking.ListServicesHandler)
	r.GET("/available", hb.Booking.AvailabilityHandler)
	r.POST("/booking", hb.Booking.CreateBookingHandler)
	r.PUT("/user/:email", hb.User.UpsertUserHandler)
}

// RegisterBookingRoutes registers the token-protected booking and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	protected := r.Group("")
	{
		protected.Use(middleware.JWTAuthMiddleware(hb.Tokens))
		protected.GET("/booking", hb.Booking.ListPatientBookingsHandler)
		protected.GET("/booking/:id", hb.Booking.GetBookingHandler)
		protected.PATCH("/booking/:id", hb.Booking.RecordPaymentHandler)
		protected.POST("/create-payment-intent", hb.Payment.CreatePaymentIntentHandler)
	}
}

// RegisterUserRoutes registers account and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	protected := r.Group("")
	{
		protected.Use(middleware.JWTAuthMiddleware(hb.Tokens))
		protected.GET("/users", hb.User.GetAllUsersHandler)
		protected.GET("/admin/:email", hb.User.CheckAdminHandler)
		protected.PUT("/user/admin/:email", middleware.RequireAdmin(hb.Roles), hb.User.MakeAdminHandler)
	}
}

// RegisterDoctorRoutes registers the admin-only doctor management endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctor")
	{
		doctors.Use(middleware.JWTAuthMiddleware(hb.Tokens), middleware.RequireAdmin(hb.Roles))
		doctors.GET("", hb.Doctor.ListDoctorsHandler)
		doctors.POST("", hb.Doctor.AddDoctorHandler)
		doctors.DELETE("/:email", hb.Doctor.DeleteDoctorHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	})
}
