package responses

import (
	"time"

	"medibook-service/internal/app/models"
)

// AppointmentSummary carries the originating appointment details populated
// onto prescription listings.
type AppointmentSummary struct {
	ID              string    `json:"id"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Status          string    `json:"status"`
	Symptoms        string    `json:"symptoms"`
}

type Prescription struct {
	ID               string              `json:"id"`
	Patient          *IdentitySummary    `json:"patient,omitempty"`
	Doctor           *IdentitySummary    `json:"doctor,omitempty"`
	Appointment      *AppointmentSummary `json:"appointment,omitempty"`
	Diagnosis        string              `json:"diagnosis"`
	Medicines        []models.Medicine   `json:"medicines"`
	Instructions     string              `json:"instructions,omitempty"`
	FollowUpDate     *time.Time          `json:"followUpDate,omitempty"`
	ConsultationFee  float64             `json:"consultationFee"`
	PaymentStatus    string              `json:"paymentStatus"`
	DocumentStatus   string              `json:"documentStatus"`
	DocumentLocation string              `json:"documentLocation,omitempty"`
	DocumentURL      string              `json:"documentUrl,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}

type CreatePrescription struct {
	ID               string `json:"id"`
	DocumentStatus   string `json:"documentStatus"`
	DocumentLocation string `json:"documentLocation,omitempty"`
}
