package models

import "time"

type Medicine struct {
	Name     string `json:"name" bson:"name"`
	Dosage   string `json:"dosage" bson:"dosage"`
	Duration string `json:"duration" bson:"duration"`
	Timing   string `json:"timing" bson:"timing"`
}

type Prescription struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	PatientID       string     `json:"patientId" bson:"patientId"`
	DoctorID        string     `json:"doctorId" bson:"doctorId"`
	AppointmentID   string     `json:"appointmentId,omitempty" bson:"appointmentId,omitempty"`
	Diagnosis       string     `json:"diagnosis" bson:"diagnosis"`
	Medicines       []Medicine `json:"medicines" bson:"medicines"`
	Instructions    string     `json:"instructions,omitempty" bson:"instructions,omitempty"`
	FollowUpDate    *time.Time `json:"followUpDate,omitempty" bson:"followUpDate,omitempty"`
	ConsultationFee float64    `json:"consultationFee" bson:"consultationFee"`
	PaymentStatus   string     `json:"paymentStatus" bson:"paymentStatus"`

	// DocumentLocation is set exactly once, after the rendered PDF has been
	// stored; DocumentStatus tracks the awaiting-document window in between.
	DocumentStatus   string `json:"documentStatus" bson:"documentStatus"`
	DocumentLocation string `json:"documentLocation,omitempty" bson:"documentLocation,omitempty"`

	TimeModel `bson:",inline"`
}
