package models

import "time"

// RecordFile is the metadata of a file queued for upload. The portal never
// stores file contents; the queue is cleared once the upload completes.
type RecordFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// HealthQuestionnaire is the structured medical-history form.
type HealthQuestionnaire struct {
	Allergies           string `json:"allergies"`
	Medications         string `json:"medications"`
	MedicalHistory      string `json:"medicalHistory"`
	FamilyHistory       string `json:"familyHistory"`
	Smoking             string `json:"smoking" validate:"required,oneof=yes no former"`
	Alcohol             string `json:"alcohol" validate:"required,oneof=none occasional moderate heavy"`
	ExerciseFrequency   string `json:"exerciseFrequency" validate:"required,oneof=none occasional regular daily"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	ConsentToShare      bool   `json:"consentToShare"`
}
