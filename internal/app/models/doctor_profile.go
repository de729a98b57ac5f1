package models

type AvailabilitySlot struct {
	Day         string `json:"day" bson:"day"`
	StartTime   string `json:"startTime" bson:"startTime"`
	EndTime     string `json:"endTime" bson:"endTime"`
	MaxPatients int    `json:"maxPatients" bson:"maxPatients"`
}

// DoctorProfile is a read-only input to prescription issuance; profile
// management lives in a separate service.
type DoctorProfile struct {
	ID              string             `json:"id" bson:"_id,omitempty"`
	UserID          string             `json:"userId" bson:"userId"`
	Specialization  string             `json:"specialization" bson:"specialization"`
	Qualification   string             `json:"qualification" bson:"qualification"`
	Experience      int                `json:"experience" bson:"experience"`
	ClinicAddress   string             `json:"clinicAddress" bson:"clinicAddress"`
	ConsultationFee float64            `json:"consultationFee" bson:"consultationFee"`
	AvailableSlots  []AvailabilitySlot `json:"availableSlots,omitempty" bson:"availableSlots,omitempty"`
	PaymentQR       string             `json:"gpayQR,omitempty" bson:"gpayQR,omitempty"`
	Signature       string             `json:"signature,omitempty" bson:"signature,omitempty"`
	TimeModel       `bson:",inline"`
}
