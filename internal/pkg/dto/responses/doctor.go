package responses

import "medibook-service/internal/app/models"

type Doctor struct {
	ID      string                `json:"id"`
	Name    string                `json:"name"`
	Email   string                `json:"email"`
	Profile *models.DoctorProfile `json:"profile,omitempty"`
}
