package router

import (
	"campuslink/internal/handlers"
	"campuslink/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	voteHandler := handlers.NewVoteHandler()
	userHandler := handlers.NewUserHandler()
	adminHandler := handlers.NewAdminHandler()

	// Public routes
	r.GET("/", postHandler.List)
	r.GET("/post/:id", postHandler.Detail)
	r.GET("/u/:username", userHandler.Profile)

	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Appeal page; the ban gate exempts it
	r.GET("/banned", authHandler.ShowBanned)
	r.POST("/banned", authHandler.SubmitAppeal)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create", postHandler.ShowCreate)
		authorized.POST("/create", postHandler.Create)
		authorized.POST("/add_comment/:id", postHandler.AddComment)
		authorized.GET("/vote/:id/:action", voteHandler.Vote)
		authorized.POST("/vote_academic/:id/:type", voteHandler.VoteAcademic)
		authorized.POST("/delete_post/:id", postHandler.DeletePost)
		authorized.POST("/delete_comment/:id", postHandler.DeleteComment)

		authorized.GET("/profile", userHandler.MyProfile)
		authorized.POST("/update_profile", userHandler.UpdateProfile)
		authorized.POST("/delete_account", userHandler.DeleteAccount)

		authorized.POST("/report/:id", userHandler.ReportUser)
		authorized.POST("/report_post/:id", userHandler.ReportPost)
	}

	// Admin routes
	admin := r.Group("/")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/admin/reports", adminHandler.ListReports)
		admin.GET("/admin/resolve_report/:id", adminHandler.ResolveReport)
		admin.POST("/ban/:id", adminHandler.BanUser)
		admin.POST("/unban/:id", adminHandler.UnbanUser)
		admin.POST("/reject_appeal/:id", adminHandler.RejectAppeal)
	}
}
