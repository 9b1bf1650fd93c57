package routes

import (
	"net/http"

	"commission-app/config"
	adminapi "commission-app/internal/api/admin"
	artistsapi "commission-app/internal/api/artists"
	authapi "commission-app/internal/api/auth"
	billingapi "commission-app/internal/api/billing"
	commissionsapi "commission-app/internal/api/commissions"
	notificationsapi "commission-app/internal/api/notifications"
	"commission-app/internal/api/users"
	"commission-app/internal/app/http/middleware"
	"commission-app/internal/infra/idempotency"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, idem *idempotency.Store) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.Static("/media", config.MEDIA_ROOT)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.GET("/artists", artistsapi.ListArtists)
	public.GET("/artists/:id", artistsapi.GetArtist)
	public.GET("/categories", commissionsapi.ListCategories)

	// Authenticated
	auth := r.Group("/")
	auth.Use(
		middleware.AuthMiddleware(),
		middleware.ResolvePrincipal(),
		middleware.SanitizeAndCleanInputMiddleware(),
	)

	auth.GET("/me", users.GetCurrentUser)
	auth.PUT("/me", users.UpdateCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/artists", artistsapi.CreateArtist)
	auth.GET("/artists/me", artistsapi.GetMyArtist)
	auth.PUT("/artists/me", artistsapi.UpdateMyArtist)
	auth.GET("/artists/me/portfolio", artistsapi.ListMyPortfolio)
	auth.POST("/artists/me/portfolio", artistsapi.CreatePortfolioItem)
	auth.PUT("/artists/me/portfolio/:itemId", artistsapi.UpdatePortfolioItem)
	auth.DELETE("/artists/me/portfolio/:itemId", artistsapi.DeletePortfolioItem)

	auth.POST("/commissions", commissionsapi.CreateCommission)
	auth.GET("/commissions", commissionsapi.ListCommissions)
	auth.GET("/commissions/stats", commissionsapi.CommissionStats)
	auth.GET("/commissions/:id", commissionsapi.GetCommission)
	auth.PUT("/commissions/:id", commissionsapi.UpdateCommission)
	auth.POST("/commissions/:id/status", commissionsapi.UpdateStatus)
	auth.POST("/commissions/:id/review", commissionsapi.SubmitReview)
	auth.GET("/commissions/:id/revisions", commissionsapi.ListRevisions)
	auth.POST("/commissions/:id/revisions", commissionsapi.CreateRevision)
	auth.POST("/commissions/:id/reference-images", commissionsapi.UploadReferenceImage)
	auth.DELETE("/commissions/:id/reference-images", commissionsapi.DeleteReferenceImage)

	auth.GET("/payments/methods", billingapi.ListMethods)
	auth.POST("/payments/methods", billingapi.CreateMethod)
	auth.GET("/payments/methods/:id", billingapi.GetMethod)
	auth.PUT("/payments/methods/:id", billingapi.UpdateMethod)
	auth.DELETE("/payments/methods/:id", billingapi.DeleteMethod)
	auth.GET("/payments", billingapi.ListPayments)
	auth.POST("/payments", middleware.Idempotent(idem), billingapi.CreatePayment)
	auth.GET("/payments/stats", billingapi.MyPaymentStats)
	auth.GET("/payments/:id", billingapi.GetPayment)
	auth.POST("/payments/:id/process", middleware.Idempotent(idem), billingapi.ProcessPayment)

	auth.GET("/notifications", notificationsapi.ListNotifications)
	auth.GET("/notifications/unread-count", notificationsapi.UnreadCount)
	auth.POST("/notifications/mark-all-read", notificationsapi.MarkAllRead)
	auth.GET("/notifications/:id", notificationsapi.GetNotification)
	auth.DELETE("/notifications/:id", notificationsapi.DeleteNotification)
	auth.POST("/notifications/:id/read", notificationsapi.MarkRead)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.ResolvePrincipal(),
		middleware.RequireRole("admin"),
		middleware.SanitizeAndCleanInputMiddleware(),
	)
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/users/:id", adminapi.GetUserDetails)

	admin.GET("/artists", artistsapi.AdminListArtists)
	admin.PATCH("/artists/:id/status", artistsapi.AdminSetArtistStatus)

	admin.GET("/commissions", commissionsapi.AdminListCommissions)
	admin.GET("/categories", commissionsapi.AdminListCategories)
	admin.POST("/categories", commissionsapi.AdminCreateCategory)
	admin.PUT("/categories/:id", commissionsapi.AdminUpdateCategory)
	admin.DELETE("/categories/:id", commissionsapi.AdminDeleteCategory)

	admin.GET("/payments", billingapi.AdminListPayments)
	admin.GET("/payments/stats", billingapi.AdminPaymentStatsHandler)
}
