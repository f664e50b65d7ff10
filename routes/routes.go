package routes

import (
	"net/http"
	"time"

	"autocare/handlers"
	"autocare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers and auth gates the router wires up.
type HandlerBundle struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Booking    *handlers.BookingHandler
	Catalog    *handlers.CatalogHandler
	Cart       *handlers.CartHandler
	Admin      *handlers.AdminHandler
	Notify     *handlers.NotifyHandler
	Newsletter *handlers.NewsletterHandler

	// UserGate and AdminGate are the two instances of the principal-resolver
	// middleware, one per credential namespace.
	UserGate  gin.HandlerFunc
	AdminGate gin.HandlerFunc
}

// RegisterAuthRoutes registers public registration/login plus token logout.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/logout", hb.UserGate, hb.Auth.LogoutHandler)
	}
}

// RegisterUserRoutes registers the authenticated customer endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/user")
	api.Use(hb.UserGate)
	{
		api.GET("/profile", hb.User.GetProfileHandler)
		api.PUT("/profile", hb.User.UpdateProfileHandler)
		api.PUT("/password", hb.User.ChangePasswordHandler)
		api.POST("/cars", hb.User.AddCarHandler)
		api.GET("/bookings", hb.User.MyBookingsHandler)
	}
}

// RegisterServiceRoutes registers the public catalog and booking endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.ListServicesHandler)
		api.POST("/book", hb.UserGate, hb.Booking.BookServiceHandler)
		api.DELETE("/cancel/:id", hb.UserGate, hb.Booking.CancelBookingHandler)
	}
}

// RegisterCartRoutes registers the cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/cart")
	api.Use(hb.UserGate)
	{
		api.GET("", hb.Cart.GetCartHandler)
		api.POST("/add", hb.Cart.AddCartItemHandler)
		api.DELETE("/remove/:serviceId", hb.Cart.RemoveCartItemHandler)
		api.DELETE("/clear", hb.Cart.ClearCartHandler)
	}
}

// RegisterAdminRoutes registers the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.LoginHandler)

		protected := api.Group("")
		protected.Use(hb.AdminGate)
		protected.POST("/logout", hb.Admin.LogoutHandler)
		protected.GET("/users", hb.Admin.ListUsersHandler)
		protected.GET("/bookings", hb.Admin.ListBookingsHandler)
		protected.PATCH("/bookings/:id", hb.Admin.UpdateBookingStatusHandler)
		protected.GET("/services", hb.Admin.ListAllServicesHandler)
		protected.POST("/service", hb.Admin.AddServiceHandler)
		protected.PUT("/service/:id", hb.Admin.UpdateServiceHandler)
		protected.DELETE("/service/:id", hb.Admin.DeleteServiceHandler)
	}
}

// RegisterNotifyRoutes registers the notification relay endpoints.
func RegisterNotifyRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notify")
	{
		api.GET("/stream", hb.Notify.StreamHandler)
		api.POST("/booking", hb.Notify.PublishHandler)
	}
}

// RegisterNewsletterRoutes registers the newsletter endpoints.
func RegisterNewsletterRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/newsletter")
	{
		api.POST("/subscribe", hb.Newsletter.SubscribeHandler)
		api.GET("/verify", hb.Newsletter.VerifyHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterNotifyRoutes(r, hb)
	RegisterNewsletterRoutes(r, hb)
	RegisterHealthRoute(r)
}
