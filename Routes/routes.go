package Routes

import (
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Controllers"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/Middleware"
	"github.com/Rj-Kushwaha/Aegis-Health-Assistant/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	{

		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.POST("/SaveFcmToken", Controllers.SaveFcmToken)

		// Triage-related routes
		authorized.POST("/AnalyzeSymptoms", Controllers.AnalyzeSymptoms)
		authorized.POST("/AskChatbot", Controllers.AskChatbot)

		// Report-related routes
		authorized.GET("/FetchConsultations", Controllers.FetchConsultations)
		authorized.GET("/ConsultationStats", Controllers.GetConsultationStats)
		authorized.POST("/ExportConsultationsExcel", Controllers.ExportConsultationsExcel)

		// Reminder-related routes
		authorized.POST("/AddMedicineReminder", Controllers.AddMedicineReminder)
		authorized.GET("/FetchMedicineReminders", Controllers.FetchMedicineReminders)
		authorized.POST("/DeactivateReminder", Controllers.DeactivateReminder)
		authorized.POST("/EnableWaterReminders", Controllers.EnableWaterReminders)

		// Notification-related routes
		authorized.GET("/FetchNotifications", Controllers.FetchNotifications)

		// Hospital finder
		authorized.POST("/FindHospitals", Controllers.FindHospitals)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)
	}
}
