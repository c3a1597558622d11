package storage

import "github.com/dr-lamia/med-nexus-portal/models"

// Package-level stores, populated by Init. The portal has no database; every
// directory below is the canonical mock data set.
var (
	Doctors       *DoctorStore
	Appointments  *AppointmentStore
	Prescriptions *PrescriptionStore
	Pharmacies    *PharmacyStore
	Users         *UserRegistry
	Sessions      SessionStore
	Consultations *ConsultationStore
	Records       *RecordStore
)

// Init seeds every store. The session backend is chosen by the caller so the
// same wiring serves both the memory and redis configurations.
func Init(sessions SessionStore) {
	Doctors = NewDoctorStore(seedDoctors())
	Appointments = NewAppointmentStore(seedAppointments())
	Prescriptions = NewPrescriptionStore(seedPrescriptions())
	Pharmacies = NewPharmacyStore(seedPharmacies())
	Users = NewUserRegistry()
	Sessions = sessions
	Consultations = NewConsultationStore()
	Records = NewRecordStore()
}

func seedDoctors() []models.Doctor {
	return []models.Doctor{
		{ID: "1", Name: "Sarah Johnson", Specialty: "Cardiology", Location: "New York, NY", Rating: 4.9, ReviewCount: 127, Availability: "Available today", Verified: true},
		{ID: "2", Name: "David Chen", Specialty: "Dermatology", Location: "San Francisco, CA", Rating: 4.7, ReviewCount: 94, Availability: "Next available: Tomorrow", Verified: true},
		{ID: "3", Name: "Maria Rodriguez", Specialty: "Pediatrics", Location: "Chicago, IL", Rating: 4.8, ReviewCount: 113, Availability: "Available today", Verified: true},
		{ID: "4", Name: "James Wilson", Specialty: "Orthopedics", Location: "Boston, MA", Rating: 4.6, ReviewCount: 87, Availability: "Next available: Thu, May 6", Verified: false},
		{ID: "5", Name: "Emily Taylor", Specialty: "Neurology", Location: "Seattle, WA", Rating: 4.9, ReviewCount: 142, Availability: "Next available: Wed, May 5", Verified: true},
		{ID: "6", Name: "Michael Brown", Specialty: "Psychiatry", Location: "Austin, TX", Rating: 4.7, ReviewCount: 78, Availability: "Available today", Verified: true},
	}
}

func seedAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: "1", DoctorName: "Dr. Sarah Johnson", Specialty: "Cardiology", Date: "May 8, 2025", Time: "10:00 AM", Status: models.BookingStatusConfirmed},
		{ID: "2", DoctorName: "Dr. Michael Chen", Specialty: "Family Medicine", Date: "May 15, 2025", Time: "2:30 PM", Status: models.BookingStatusConfirmed},
		{ID: "3", DoctorName: "Dr. Emily Taylor", Specialty: "Neurology", Date: "May 22, 2025", Time: "11:15 AM", Status: models.BookingStatusPending},
	}
}

func seedPrescriptions() []models.Prescription {
	return []models.Prescription{
		{ID: "1", PatientID: "P123", PatientName: "John Doe", Medication: "Amoxicillin", Dosage: "500mg", Frequency: "Three times daily", Duration: "7 days", PrescribedBy: "Dr. Sarah Johnson", PrescribedDate: "2025-04-28", Status: models.PrescriptionStatusActive, Refills: 2},
		{ID: "2", PatientID: "P123", PatientName: "John Doe", Medication: "Ibuprofen", Dosage: "200mg", Frequency: "As needed", Duration: "30 days", PrescribedBy: "Dr. Sarah Johnson", PrescribedDate: "2025-04-25", Status: models.PrescriptionStatusActive, Refills: 1},
		{ID: "3", PatientID: "P456", PatientName: "Jane Smith", Medication: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", Duration: "90 days", PrescribedBy: "Dr. Michael Chen", PrescribedDate: "2025-04-10", Status: models.PrescriptionStatusActive, Refills: 3},
		{ID: "4", PatientID: "P789", PatientName: "Emma Wilson", Medication: "Levothyroxine", Dosage: "125mcg", Frequency: "Once daily", Duration: "30 days", PrescribedBy: "Dr. Sarah Johnson", PrescribedDate: "2025-04-15", Status: models.PrescriptionStatusActive, Refills: 5},
		{ID: "5", PatientID: "P123", PatientName: "John Doe", Medication: "Metformin", Dosage: "500mg", Frequency: "Twice daily", Duration: "90 days", PrescribedBy: "Dr. Michael Chen", PrescribedDate: "2025-03-20", Status: models.PrescriptionStatusExpired, Refills: 0},
	}
}

func seedPharmacies() []models.Pharmacy {
	return []models.Pharmacy{
		{ID: "1", Name: "MedCare Pharmacy", Address: "123 Main Street, Cityville", Phone: "(555) 123-4567", Hours: "8:00 AM - 9:00 PM", Distance: "0.8 miles", HasDelivery: true},
		{ID: "2", Name: "HealthPlus Drugstore", Address: "456 Oak Avenue, Townsburg", Phone: "(555) 987-6543", Hours: "24 hours", Distance: "1.2 miles", HasDelivery: true},
		{ID: "3", Name: "Community Care Pharmacy", Address: "789 Maple Boulevard, Villageton", Phone: "(555) 456-7890", Hours: "9:00 AM - 7:00 PM", Distance: "1.5 miles", HasDelivery: false},
		{ID: "4", Name: "Wellness Rx", Address: "321 Pine Street, Hamletville", Phone: "(555) 234-5678", Hours: "8:00 AM - 8:00 PM", Distance: "2.3 miles", HasDelivery: true},
	}
}

// SpecialtyTable maps the symptom keywords the AI keyword call may return to
// specialty details and the doctor-search route that filters for them.
var SpecialtyTable = map[string]models.SpecialtyInfo{
	"dental":      {Keyword: "dental", Name: "Dentistry", Description: "Issues related to teeth, gums, and oral health", Route: "/find-doctors?specialty=dentistry"},
	"child":       {Keyword: "child", Name: "Pediatrics", Description: "Medical care for infants, children, and adolescents", Route: "/find-doctors?specialty=pediatrics"},
	"skin":        {Keyword: "skin", Name: "Dermatology", Description: "Conditions related to skin, hair, and nails", Route: "/find-doctors?specialty=dermatology"},
	"heart":       {Keyword: "heart", Name: "Cardiology", Description: "Heart and blood vessel conditions", Route: "/find-doctors?specialty=cardiology"},
	"bone":        {Keyword: "bone", Name: "Orthopedics", Description: "Issues related to bones, joints, ligaments, and muscles", Route: "/find-doctors?specialty=orthopedics"},
	"eye":         {Keyword: "eye", Name: "Ophthalmology", Description: "Eye conditions and vision problems", Route: "/find-doctors?specialty=ophthalmology"},
	"mental":      {Keyword: "mental", Name: "Psychiatry", Description: "Mental health conditions and emotional well-being", Route: "/find-doctors?specialty=psychiatry"},
	"nerve":       {Keyword: "nerve", Name: "Neurology", Description: "Disorders of the nervous system, including brain and spinal cord", Route: "/find-doctors?specialty=neurology"},
	"respiratory": {Keyword: "respiratory", Name: "Pulmonology", Description: "Conditions affecting the lungs and breathing", Route: "/find-doctors?specialty=pulmonology"},
	"digestive":   {Keyword: "digestive", Name: "Gastroenterology", Description: "Disorders of the digestive system including stomach, intestines, liver", Route: "/find-doctors?specialty=gastroenterology"},
}
