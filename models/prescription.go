package models

const (
	PrescriptionStatusActive  = "active"
	PrescriptionStatusExpired = "expired"
)

type Prescription struct {
	ID             string `json:"id"`
	PatientID      string `json:"patientId"`
	PatientName    string `json:"patientName"`
	Medication     string `json:"medication"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Duration       string `json:"duration"`
	PrescribedBy   string `json:"prescribedBy"`
	PrescribedDate string `json:"prescribedDate"`
	Status         string `json:"status"`
	Refills        int    `json:"refills"`
}

// PrescribeRequest is the doctor-side new prescription form. PatientEmail is
// optional; when present the patient gets the prescription PDF by mail.
type PrescribeRequest struct {
	PatientID    string `json:"patientId" validate:"required"`
	PatientName  string `json:"patientName" validate:"required"`
	PatientEmail string `json:"patientEmail" validate:"omitempty,email"`
	Medication  string `json:"medication" validate:"required"`
	Dosage      string `json:"dosage" validate:"required"`
	Frequency   string `json:"frequency" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	Refills     int    `json:"refills" validate:"gte=0"`
}
