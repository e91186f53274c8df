package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/api/handlers"
	"github.com/linskybing/logistics-go/internal/api/middleware"
	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/logistics-go/docs"
)

var managers = []user.Role{user.RoleAdmin, user.RoleExecutive, user.RoleOperationalLead}

func RegisterRoutes(r *gin.Engine, svc *application.Services, repos *repository.Repos) {
	h := handlers.New(svc, r)
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// public
	r.POST("/auth/login", h.User.Login)
	r.POST("/auth/register", h.User.Register)
	r.POST("/auth/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(), authMiddleware.Identity())
	{
		auth.GET("/auth/session", h.User.Session)

		users := auth.Group("/users")
		{
			users.GET("", authMiddleware.RequireRoles(managers...), h.User.ListUsers)
			users.POST("", authMiddleware.Admin(), h.User.CreateUser)
			users.GET("/drivers", authMiddleware.Admin(), h.Task.ListDrivers)
			users.PUT("/me/password", h.User.ChangePassword)
			users.GET("/:id", h.User.GetUser)
			users.PUT("/:id", h.User.UpdateUser)
		}

		tasks := auth.Group("/tasks")
		{
			tasks.GET("", h.Task.ListTasks)
			tasks.POST("", authMiddleware.Admin(), h.Task.CreateTask)
			tasks.GET("/:id", h.Task.GetTask)
			tasks.PUT("/:id", authMiddleware.Admin(), h.Task.UpdateTask)
			tasks.DELETE("/:id", authMiddleware.Admin(), h.Task.DeleteTask)
			tasks.POST("/:id/cancel", authMiddleware.Admin(), h.Task.CancelTask)
			tasks.GET("/:id/attachments", h.Attachment.ListByTask)
			tasks.POST("/:id/attachments", authMiddleware.Admin(), h.Attachment.AddAttachment)
		}

		attachments := auth.Group("/attachments")
		{
			attachments.DELETE("/:id", authMiddleware.Admin(), h.Attachment.DeleteAttachment)
			attachments.GET("/:id/submissions", h.Submission.History)
			attachments.GET("/:id/prefill", authMiddleware.Fulfiller(), h.Submission.Prefill)
			attachments.POST("/:id/submissions/checklist", authMiddleware.Fulfiller(), h.Submission.SubmitChecklist)
			attachments.POST("/:id/submissions/document", authMiddleware.Fulfiller(), h.Submission.SubmitDocument)
		}

		submissions := auth.Group("/submissions")
		{
			submissions.GET("", authMiddleware.Reviewer(), h.Submission.ReviewQueue)
			submissions.GET("/export.xlsx", authMiddleware.RequireRoles(managers...), h.Submission.Export)
			submissions.GET("/:id", h.Submission.GetSubmission)
			submissions.GET("/:id/file-url", h.Submission.FileURL)
			submissions.POST("/:id/review", authMiddleware.Reviewer(), h.Submission.Review)
		}

		auth.GET("/my/checklists", authMiddleware.Fulfiller(), h.Submission.MyChecklists)

		templates := auth.Group("/checklist-templates")
		{
			templates.GET("", h.Checklist.ListTemplates)
			templates.POST("", authMiddleware.Admin(), h.Checklist.CreateTemplate)
			templates.GET("/:id", h.Checklist.GetTemplate)
			templates.PUT("/:id", authMiddleware.Admin(), h.Checklist.UpdateTemplate)
			templates.DELETE("/:id", authMiddleware.Admin(), h.Checklist.DeleteTemplate)
			templates.PUT("/:id/reorder", authMiddleware.Admin(), h.Checklist.ReorderFields)
			templates.POST("/:id/clone", authMiddleware.Admin(), h.Checklist.CloneTemplate)
			templates.POST("/:id/validate", h.Checklist.ValidateValues)
		}

		documents := auth.Group("/documents")
		{
			documents.GET("", h.Document.ListDocuments)
			documents.POST("", authMiddleware.RequireRoles(managers...), h.Document.UploadDocument)
			documents.GET("/:id", h.Document.GetDocument)
			documents.PUT("/:id", authMiddleware.RequireRoles(managers...), h.Document.UpdateDocument)
			documents.DELETE("/:id", authMiddleware.RequireRoles(managers...), h.Document.DeleteDocument)
		}

		auth.GET("/dashboard/stats", h.Dashboard.Stats)
	}
}
