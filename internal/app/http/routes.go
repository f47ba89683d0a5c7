package routes

import (
	"net/http"
	"time"

	"gym-backend/config"
	adminapi "gym-backend/internal/api/admin"
	attendanceapi "gym-backend/internal/api/attendance"
	authapi "gym-backend/internal/api/auth"
	"gym-backend/internal/api/billing"
	"gym-backend/internal/api/contact"
	plansapi "gym-backend/internal/api/plans"
	postsapi "gym-backend/internal/api/posts"
	siteapi "gym-backend/internal/api/site"
	stripewebhooks "gym-backend/internal/api/stripewebhook"
	"gym-backend/internal/api/users"
	"gym-backend/internal/api/validate"
	"gym-backend/internal/app/http/middleware"
	"gym-backend/internal/domain/access"
	"gym-backend/internal/infra/mail"
	"gym-backend/internal/infra/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.Engine, mailer mail.Mailer) {
	validate.Register()
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.Static("/uploads", uploadDir())

	api := r.Group("/api")

	api.POST("/webhook/stripe", stripewebhooks.StripeWebhook)
	api.POST("/auth/login", authapi.Login)
	if config.GoogleEnabled() {
		api.GET("/auth/google", authapi.GoogleStart)
		api.GET("/auth/google/callback", authapi.GoogleCallback)
	}
	api.GET("/content/:section", siteapi.GetContent)
	api.GET("/plans/catalog", plansapi.Catalog)

	// Public enquiry forms: sanitised and throttled per client.
	enquiries := contact.NewHandler(mailer, config.MAIL_TO)
	limiter := middleware.NewRateLimiter(rate.Every(12*time.Second), 5)
	public := api.Group("/")
	public.Use(limiter.Middleware(), middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/contact", enquiries.Contact)
	public.POST("/join", enquiries.Join)

	// Any signed-in user
	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/auth/change-password", authapi.ChangePassword)
	auth.GET("/posts", postsapi.List)
	auth.GET("/attendance/history/:memberId", attendanceapi.History)

	// Members
	member := auth.Group("/")
	member.Use(middleware.RequireMember())
	member.GET("/plans/my-plans", plansapi.MyPlans)
	member.GET("/member/profile", users.GetProfile)
	member.PUT("/member/profile", middleware.SanitizeAndCleanInputMiddleware(), users.UpdateProfile)
	member.POST("/member/avatar", users.UploadAvatar)
	member.GET("/member/payments", users.MyPayments)
	member.POST("/billing/checkout", billing.CreateCheckoutSession)

	// Admins
	admin := auth.Group("/")
	admin.Use(middleware.RequireRole(access.RoleAdmin))
	admin.GET("/admin/members", adminapi.ListMembers)
	admin.POST("/admin/members", adminapi.CreateMember)
	admin.DELETE("/admin/members/:id", adminapi.DeleteMember)
	admin.PUT("/admin/members/:id/subscription", adminapi.UpdateSubscription)
	admin.GET("/admin/members/:id/payments", adminapi.ListMemberPayments)
	admin.GET("/admin/stats", adminapi.GetAdminStats)
	admin.GET("/admin/me", adminapi.GetProfile)
	admin.GET("/admin/profile", adminapi.GetProfile)
	admin.PUT("/admin/profile", middleware.SanitizeAndCleanInputMiddleware(), adminapi.UpdateProfile)
	admin.POST("/admin/avatar", adminapi.UploadAvatar)

	admin.GET("/payments", adminapi.ListAllPayments)
	admin.POST("/payments", adminapi.CreatePayment)

	admin.POST("/attendance/mark", attendanceapi.Mark)
	admin.GET("/attendance/today", attendanceapi.Today)

	admin.POST("/plans", plansapi.Assign)
	admin.GET("/plans/member/:id", plansapi.MemberPlans)
	admin.DELETE("/plans/:id", plansapi.Delete)

	admin.PUT("/content/:section", siteapi.UpdateContent)

	admin.POST("/posts", postsapi.Create)
	admin.DELETE("/posts/:id", postsapi.Delete)
}

func uploadDir() string {
	if config.UPLOAD_DIR == "" {
		return "uploads"
	}
	return config.UPLOAD_DIR
}
