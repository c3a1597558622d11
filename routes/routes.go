package routes

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dr-lamia/med-nexus-portal/authentication"
	"github.com/dr-lamia/med-nexus-portal/controllers"
	"github.com/dr-lamia/med-nexus-portal/models"
)

// SetupRouter wires the portal API: public auth and directory routes, the
// authenticated /user group, and the doctor-only /doctor group.
func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Public routes
	r.POST("/users/login", controllers.Login)
	r.POST("/users/signup", controllers.Register)
	r.GET("/specialties", controllers.ListSpecialties)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	user := r.Group("/user")
	user.Use(authentication.RequireAuth())
	{
		user.GET("/session", controllers.Session)
		user.GET("/logout", controllers.Logout)
		user.GET("/dashboard", controllers.Dashboard)

		user.GET("/doctors/search", controllers.SearchDoctors)
		user.GET("/doctors/:doctor_id", controllers.GetDoctorByID)
		user.GET("/doctors/:doctor_id/available-slots", controllers.GetAvailableTimeSlots)

		user.GET("/appointments", controllers.GetAppointments)
		user.POST("/book/appointment", controllers.BookAppointment)

		user.GET("/prescriptions", controllers.GetPrescriptions)
		user.POST("/prescriptions/:id/refill", controllers.RefillPrescription)
		user.GET("/prescriptions/:id/pdf", controllers.DownloadPrescriptionPDF)

		user.GET("/pharmacies/nearby", controllers.NearbyPharmacies)

		user.POST("/consultation/guided", controllers.StartGuidedConsultation)
		user.GET("/consultation/guided/:id", controllers.GetGuidedConsultation)
		user.POST("/consultation/guided/:id/answers", controllers.AnswerGuidedConsultation)

		user.POST("/consultation/chat", controllers.StartChat)
		user.POST("/consultation/chat/:id/messages", controllers.SendChatMessage)

		user.POST("/records/files", controllers.QueueRecordFiles)
		user.GET("/records/files", controllers.GetPendingRecords)
		user.POST("/records/upload", controllers.CompleteRecordUpload)
		user.POST("/records/questionnaire", controllers.SubmitQuestionnaire)
	}

	// Doctor routes
	doctors := r.Group("/doctor")
	doctors.Use(authentication.RequireAuth(), authentication.RequireUserType(models.UserTypeDoctor))
	{
		doctors.POST("/add/prescription", controllers.AddPrescription)
		doctors.GET("/prescriptions", controllers.GetPrescriptions)
	}

	// Catch-all path renders the not-found page
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})

	return r
}

func allowedOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:5173", "http://localhost:3000"}
}
