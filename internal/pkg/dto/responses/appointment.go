package responses

import "time"

type Appointment struct {
	ID               string           `json:"id"`
	Patient          *IdentitySummary `json:"patient,omitempty"`
	Doctor           *IdentitySummary `json:"doctor,omitempty"`
	AppointmentDate  time.Time        `json:"appointmentDate"`
	Status           string           `json:"status"`
	Symptoms         string           `json:"symptoms"`
	Type             string           `json:"type"`
	Notes            string           `json:"notes,omitempty"`
	CancelReason     string           `json:"cancelReason,omitempty"`
	NotificationSent bool             `json:"notificationSent"`
	CreatedAt        time.Time        `json:"createdAt"`
}

type CreateAppointment struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	AppointmentDate time.Time `json:"appointmentDate"`
}

type UpdateAppointmentStatus struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	CancelReason string `json:"cancelReason,omitempty"`
}
