package requests

type CreateAppointmentRequest struct {
	DoctorID        string `json:"doctorId" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	Symptoms        string `json:"symptoms" validate:"required"`
	Type            string `json:"type" validate:"omitempty,oneof=regular emergency"`
	Notes           string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed emergency"`
	Reason string `json:"reason"`
}

// DoctorAppointmentListParams narrows a doctor's listing to one status and/or
// the calendar day containing Date, both optional.
type DoctorAppointmentListParams struct {
	Status string `validate:"omitempty,oneof=pending confirmed cancelled completed emergency"`
	Date   string
}
