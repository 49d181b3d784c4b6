// Package routes wires controllers onto the Gin engine.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edutrack/backend/internal/app/controllers"
	"github.com/edutrack/backend/internal/middleware"
)

// Controllers bundles everything SetupRouter mounts
type Controllers struct {
	Auth         *controllers.AuthController
	Student      *controllers.StudentController
	Subject      *controllers.SubjectController
	Attendance   *controllers.AttendanceController
	Enrollment   *controllers.EnrollmentController
	Activity     *controllers.ActivityController
	Certificate  *controllers.CertificateController
	Chatbot      *controllers.ChatbotController
	Notification *controllers.NotificationController
	Export       *controllers.ExportController
	Health       *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", ctrl.Health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	// Public chatbot routes
	chatbot := api.Group("/chatbot")
	{
		chatbot.POST("/message", ctrl.Chatbot.SendMessage)
		chatbot.GET("/suggestions/:role", ctrl.Chatbot.GetSuggestions)
		chatbot.GET("/suggestions", ctrl.Chatbot.GetSuggestions)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(authMiddleware.JWTAuth())

	authed.GET("/auth/me", ctrl.Auth.GetMe)

	// Write access is restricted to teachers and admins
	staff := authed.Group("")
	staff.Use(authMiddleware.RoleRequired("teacher", "admin"))

	students := authed.Group("/students")
	{
		students.GET("", ctrl.Student.GetStudents)
		students.GET("/:id", ctrl.Student.GetStudent)
	}
	staffStudents := staff.Group("/students")
	{
		staffStudents.POST("", ctrl.Student.AddStudent)
		staffStudents.PUT("/:id", ctrl.Student.UpdateStudent)
		staffStudents.DELETE("/:id", ctrl.Student.DeleteStudent)
	}

	subjects := authed.Group("/subjects")
	{
		subjects.GET("", ctrl.Subject.GetSubjects)
		subjects.GET("/:id", ctrl.Subject.GetSubject)
	}
	staffSubjects := staff.Group("/subjects")
	{
		staffSubjects.POST("", ctrl.Subject.CreateSubject)
		staffSubjects.PUT("/:id", ctrl.Subject.UpdateSubject)
		staffSubjects.DELETE("/:id", ctrl.Subject.DeleteSubject)
		staffSubjects.POST("/:id/topics", ctrl.Subject.AddTopic)
		staffSubjects.PUT("/:id/topics/:topicId/complete", ctrl.Subject.CompleteTopic)
		staffSubjects.DELETE("/:id/topics/:topicId", ctrl.Subject.DeleteTopic)
	}

	attendance := authed.Group("/attendance")
	{
		attendance.GET("/report", ctrl.Attendance.GetReport)
	}
	staffAttendance := staff.Group("/attendance")
	{
		staffAttendance.POST("/mark", ctrl.Attendance.MarkAttendance)
	}

	enrollment := authed.Group("/enrollment")
	{
		enrollment.GET("/student/:studentId", ctrl.Enrollment.GetStudentSubjects)
	}
	staffEnrollment := staff.Group("/enrollment")
	{
		staffEnrollment.POST("/add-subject", ctrl.Enrollment.AddSubject)
		staffEnrollment.POST("/remove-subject", ctrl.Enrollment.RemoveSubject)
		staffEnrollment.POST("/bulk-add", ctrl.Enrollment.BulkAdd)
	}

	activity := authed.Group("/activity")
	{
		activity.GET("", ctrl.Activity.GetActivities)
	}
	staffActivity := staff.Group("/activity")
	{
		staffActivity.POST("", ctrl.Activity.AddActivity)
		staffActivity.DELETE("/:id", ctrl.Activity.DeleteActivity)
	}

	certificates := authed.Group("/certificates")
	{
		certificates.GET("", ctrl.Certificate.GetCertificates)
		certificates.GET("/student/:studentId", ctrl.Certificate.GetStudentCertificates)
	}
	staffCertificates := staff.Group("/certificates")
	{
		staffCertificates.POST("", ctrl.Certificate.UploadCertificate)
		staffCertificates.DELETE("/:id", ctrl.Certificate.DeleteCertificate)
	}

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", ctrl.Notification.GetNotifications)
		notifications.GET("/unread-count", ctrl.Notification.GetUnreadCount)
		notifications.PUT("/read-all", ctrl.Notification.MarkAllAsRead)
		notifications.PUT("/:id/read", ctrl.Notification.MarkAsRead)
		notifications.DELETE("/:id", ctrl.Notification.DeleteNotification)
		notifications.DELETE("", ctrl.Notification.ClearAll)
	}
	staffNotifications := staff.Group("/notifications")
	{
		staffNotifications.POST("/broadcast", ctrl.Notification.Broadcast)
		staffNotifications.POST("/attendance-alert/:userId", ctrl.Notification.SendAttendanceAlert)
	}

	export := staff.Group("/export")
	{
		export.GET("/attendance/excel", ctrl.Export.ExportAttendanceExcel)
		export.GET("/activity/excel", ctrl.Export.ExportActivityExcel)
		export.GET("/attendance/pdf", ctrl.Export.ExportAttendancePDF)
	}
}
