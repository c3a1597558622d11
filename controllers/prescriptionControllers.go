package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/dr-lamia/med-nexus-portal/authentication"
	"github.com/dr-lamia/med-nexus-portal/logger"
	"github.com/dr-lamia/med-nexus-portal/models"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

// GetPrescriptions returns the prescription history. Doctors may look at any
// patient or search freely; patients only ever see the mock current
// patient's rows.
func GetPrescriptions(c *gin.Context) {
	user := authentication.SessionUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	patientID := c.Query("patient_id")
	search := c.Query("search")

	if user.UserType != models.UserTypeDoctor {
		patientID = MockCurrentPatientID
	}

	prescriptions := storage.Prescriptions.Filter(patientID, search)
	c.JSON(http.StatusOK, gin.H{
		"count":         len(prescriptions),
		"prescriptions": prescriptions,
	})
}

// canViewPrescription applies the same pinning as GetPrescriptions: doctors
// see everything, patients only the mock current patient's rows.
func canViewPrescription(user *models.SessionUser, prescription *models.Prescription) bool {
	if user == nil {
		return false
	}
	return user.UserType == models.UserTypeDoctor || prescription.PatientID == MockCurrentPatientID
}

// RefillPrescription confirms a refill request. Nothing is decremented or
// persisted; expired or exhausted prescriptions cannot be refilled.
func RefillPrescription(c *gin.Context) {
	prescription, ok := storage.Prescriptions.Get(c.Param("id"))
	if !ok || !canViewPrescription(authentication.SessionUser(c), prescription) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prescription not found"})
		return
	}

	if prescription.Status == models.PrescriptionStatusExpired || prescription.Refills <= 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "This prescription cannot be refilled. Please contact your doctor."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"message": fmt.Sprintf("Refill request for %s has been sent to your pharmacy", prescription.Medication),
	})
}

// AddPrescription is the doctor-side prescribe action. The new prescription
// is acknowledged and mailed, never added to the seeded history.
func AddPrescription(c *gin.Context) {
	var req models.PrescribeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"Status":  "Failed",
			"message": "Please fill all the mandatory fields",
			"data":    err.Error(),
		})
		return
	}

	doctor := authentication.SessionUser(c)
	if doctor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}

	prescription := models.Prescription{
		ID:             uuid.NewString(),
		PatientID:      req.PatientID,
		PatientName:    req.PatientName,
		Medication:     req.Medication,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		Duration:       req.Duration,
		PrescribedBy:   fmt.Sprintf("Dr. %s %s", doctor.FirstName, doctor.LastName),
		PrescribedDate: time.Now().Format("2006-01-02"),
		Status:         models.PrescriptionStatusActive,
		Refills:        req.Refills,
	}

	if req.PatientEmail != "" {
		pdfData, err := generatePrescriptionPDF(prescription)
		if err != nil {
			logger.WithComponent("prescriptions").WithError(err).Error("failed to render prescription pdf")
		} else {
			msg := fmt.Sprintf("A new prescription for %s has been issued by %s.", prescription.Medication, prescription.PrescribedBy)
			if err := SendEmail("Your prescription from MedNexus", msg, req.PatientEmail, "prescription.pdf", pdfData); err != nil {
				logger.WithComponent("prescriptions").WithError(err).Warn("prescription email not sent")
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"message": fmt.Sprintf("Prescription for %s created for %s", prescription.Medication, prescription.PatientName),
		"data":    prescription,
	})
}

// DownloadPrescriptionPDF renders a prescription as a PDF document.
func DownloadPrescriptionPDF(c *gin.Context) {
	prescription, ok := storage.Prescriptions.Get(c.Param("id"))
	if !ok || !canViewPrescription(authentication.SessionUser(c), prescription) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prescription not found"})
		return
	}

	pdfData, err := generatePrescriptionPDF(*prescription)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=prescription-%s.pdf", prescription.ID))
	c.Data(http.StatusOK, "application/pdf", pdfData)
}

func generatePrescriptionPDF(p models.Prescription) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(13, 71, 161)
	pdf.CellFormat(0, 10, "MedNexus - Prescription", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, "www.mednexus.example", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Prescription Details", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	rows := [][2]string{
		{"Patient", fmt.Sprintf("%s (%s)", p.PatientName, p.PatientID)},
		{"Medication", p.Medication},
		{"Dosage", p.Dosage},
		{"Frequency", p.Frequency},
		{"Duration", p.Duration},
		{"Prescribed by", p.PrescribedBy},
		{"Prescribed date", p.PrescribedDate},
		{"Status", p.Status},
		{"Refills remaining", fmt.Sprintf("%d", p.Refills)},
	}
	for _, row := range rows {
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, row[1], "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
