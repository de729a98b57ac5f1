package requests

type MedicineRequest struct {
	Name     string `json:"name" validate:"required"`
	Dosage   string `json:"dosage" validate:"required"`
	Duration string `json:"duration" validate:"required"`
	Timing   string `json:"timing" validate:"required"`
}

type CreatePrescriptionRequest struct {
	PatientID       string            `json:"patientId" validate:"required"`
	AppointmentID   string            `json:"appointmentId"`
	Diagnosis       string            `json:"diagnosis" validate:"required"`
	Medicines       []MedicineRequest `json:"medicines" validate:"required,min=1,dive"`
	Instructions    string            `json:"instructions"`
	FollowUpDate    string            `json:"followUpDate"`
	ConsultationFee float64           `json:"consultationFee" validate:"gte=0"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending completed"`
}
