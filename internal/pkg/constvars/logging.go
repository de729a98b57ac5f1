package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingSessionKey        = "session"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingTemplateKindKey   = "template_kind"
	LoggingDocumentKey       = "document_location"
)
