package routes

import (
	adminapi "studio-backend/internal/api/admin"
	authapi "studio-backend/internal/api/auth"
	clientsapi "studio-backend/internal/api/clients"
	ordersapi "studio-backend/internal/api/orders"
	paymentsapi "studio-backend/internal/api/payments"
	"studio-backend/internal/api/paymentwebhook"
	portfolioapi "studio-backend/internal/api/portfolio"
	pricesapi "studio-backend/internal/api/prices"
	shootsapi "studio-backend/internal/api/shoots"
	"studio-backend/internal/app/http/middleware"
	"studio-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Every route resolves the session cookie; guards below decide access.
	r.Use(middleware.SessionMiddleware())

	// Gateway notifications arrive as GET (query form) or POST (JSON form).
	r.GET("/webhook/mercadopago", paymentwebhook.Handle)
	r.POST("/webhook/mercadopago", paymentwebhook.Handle)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/login", authapi.Login)
	public.POST("/admin/login", authapi.AdminLogin)
	public.POST("/logout", authapi.Logout)
	public.GET("/me", authapi.Me)
	public.GET("/portfolio", portfolioapi.GetActive)
	public.GET("/prices", pricesapi.GetAll)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.POST("/link-account", authapi.LinkAccount)

	auth.GET("/photoshoots", shootsapi.ListMine)
	auth.GET("/photoshoots/:id", shootsapi.GetPhotoshoot)
	auth.GET("/photoshoots/:id/photos", shootsapi.ListPhotos)

	auth.POST("/orders", ordersapi.CreateOrder)
	auth.GET("/orders", ordersapi.ListMine)
	auth.GET("/orders/:id", ordersapi.GetOrder)

	auth.POST("/payments/pix", paymentsapi.CreatePix)
	auth.GET("/payments/:id/status", paymentsapi.CheckStatus)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(users.RoleAdmin))
	admin.GET("/dashboard", adminapi.Dashboard)
	admin.GET("/access-logs", adminapi.ListAccessLogs)

	admin.GET("/clients", clientsapi.ListClients)
	admin.GET("/clients/:id", clientsapi.GetClient)
	admin.POST("/clients", clientsapi.CreateClient)
	admin.POST("/clients/:id/regenerate-code", clientsapi.RegenerateLinkingCode)

	admin.GET("/photoshoots", shootsapi.ListAll)
	admin.POST("/photoshoots", shootsapi.CreatePhotoshoot)
	admin.PUT("/photoshoots/:id", shootsapi.UpdatePhotoshoot)
	admin.POST("/photoshoots/:id/sync", shootsapi.SyncPhotos)

	admin.GET("/orders", ordersapi.ListAll)
	admin.PUT("/orders/:id/status", ordersapi.UpdateStatus)

	admin.GET("/portfolio", portfolioapi.GetAll)
	admin.POST("/portfolio", portfolioapi.Create)
	admin.PUT("/portfolio/:id", portfolioapi.Update)
	admin.DELETE("/portfolio/:id", portfolioapi.Delete)

	admin.PUT("/prices", pricesapi.Upsert)
}
