package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Appointment messages
	AppointmentCreatedSuccess       = "appointment created successfully"
	AppointmentListSuccess          = "appointments fetched successfully"
	AppointmentStatusUpdatedSuccess = "appointment status updated successfully"
	AppointmentStatsSuccess         = "appointment statistics fetched successfully"

	// Prescription messages
	PrescriptionCreatedSuccess        = "prescription created successfully"
	PrescriptionListSuccess           = "prescriptions fetched successfully"
	PrescriptionDocumentReadySuccess  = "prescription document generated successfully"
	PrescriptionPaymentUpdatedSuccess = "prescription payment status updated successfully"
	PrescriptionStatsSuccess          = "prescription statistics fetched successfully"

	// Doctor messages
	DoctorListSuccess = "doctors fetched successfully"
	DoctorGetSuccess  = "doctor fetched successfully"
)
