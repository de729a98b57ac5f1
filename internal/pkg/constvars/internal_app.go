package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDBK_SVC_"
)

const (
	MongoCollectionUsers          = "users"
	MongoCollectionDoctorProfiles = "doctor_profiles"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionPrescriptions  = "prescriptions"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusEmergency = "emergency"
)

const (
	AppointmentTypeRegular   = "regular"
	AppointmentTypeEmergency = "emergency"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Document lifecycle of a prescription. A prescription is inserted as
// awaiting-document and flipped to document-ready exactly once, after the
// rendered PDF has been stored.
const (
	DocumentStatusAwaiting = "awaiting-document"
	DocumentStatusReady    = "document-ready"
)

// Notification template kinds understood by the mail worker.
const (
	TemplateNewAppointment     = "new-appointment"
	TemplateConfirmed          = "confirmed"
	TemplateCancelled          = "cancelled"
	TemplateRescheduled        = "rescheduled"
	TemplateCompleted          = "completed"
	TemplateEmergency          = "emergency"
	TemplatePending            = "pending"
	TemplatePrescriptionIssued = "prescription-issued"
	TemplatePasswordOTP        = "password-otp"
)

const (
	// StatisticsTrailingMonths is the current calendar month plus the five
	// preceding it.
	StatisticsTrailingMonths = 6

	StatisticsTopDiagnosesLimit = 5
)

const (
	PrescriptionDocumentObjectFormat = "prescription_%s.pdf"
)
