package models

type Pharmacy struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Hours       string `json:"hours"`
	Distance    string `json:"distance"`
	HasDelivery bool   `json:"hasDelivery"`
}
