package models

const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusPending   = "Pending"
)

type Appointment struct {
	ID         string `json:"id"`
	DoctorName string `json:"doctorName"`
	Specialty  string `json:"specialty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
}

// BookingRequest is the appointment booking form payload.
type BookingRequest struct {
	DoctorID string `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Reason   string `json:"reason"`
}
