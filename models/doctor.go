package models

type Doctor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Specialty    string  `json:"specialty"`
	Location     string  `json:"location"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`
	Availability string  `json:"availability"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	Verified     bool    `json:"verified"`
}

// DoctorSearchQuery carries the optional search fields; empty fields match everything.
type DoctorSearchQuery struct {
	Specialty string `json:"specialty" form:"specialty"`
	Location  string `json:"location" form:"location"`
	Name      string `json:"name" form:"name"`
}
