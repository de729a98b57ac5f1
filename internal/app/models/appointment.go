package models

import "time"

type Appointment struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	PatientID        string    `json:"patientId" bson:"patientId"`
	DoctorID         string    `json:"doctorId" bson:"doctorId"`
	AppointmentDate  time.Time `json:"appointmentDate" bson:"appointmentDate"`
	Status           string    `json:"status" bson:"status"`
	Symptoms         string    `json:"symptoms" bson:"symptoms"`
	Type             string    `json:"type" bson:"type"`
	Notes            string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CancelReason     string    `json:"cancelReason,omitempty" bson:"cancelReason,omitempty"`
	NotificationSent bool      `json:"notificationSent" bson:"notificationSent"`
	TimeModel        `bson:",inline"`
}
