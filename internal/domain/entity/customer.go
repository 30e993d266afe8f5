package entity

import "time"

// Customer representa un suscriptor del acueducto (titular de una o más instalaciones).
type Customer struct {
	ID         string
	CompanyID  string
	Name       string
	DocumentID string // NIT o Cédula (Colombia)
	Email      string
	Phone      string
	Address    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
