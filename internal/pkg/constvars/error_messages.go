package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"datetime": "must be a valid timestamp",
	"dive":     "is invalid",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Client facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientDoctorProfileNotFound         = "Doctor profile not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientPrescriptionNotFound          = "Prescription not found"
	ErrClientDocumentAlreadyAttached       = "Prescription document has already been generated"
)

// Dev messages
const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevInvalidInput               = "Invalid input"
	ErrDevCannotParseJSON            = "Failed to parse JSON request body"
	ErrDevCannotParseDate            = "Failed to parse date value"
	ErrDevServerDeadlineExceeded     = "Context deadline exceeded while processing request"
	ErrDevURLParamIDValidationFailed = "URL param '%s' is missing or malformed"

	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevRoleTypeDoesntMatch       = "Caller role does not allow this operation"

	ErrDevDoctorNotExists        = "Doctor with the given ID and role does not exist"
	ErrDevPatientNotExists       = "Patient with the given ID and role does not exist"
	ErrDevDoctorProfileNotExists = "Doctor profile for the given user does not exist"
	ErrDevAppointmentNotExists   = "Appointment with the given ID does not exist"
	ErrDevPrescriptionNotExists  = "Prescription with the given ID does not exist"
	ErrDevDocumentAlreadySet     = "Prescription document location is already attached"

	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBFailedToAggregate        = "MongoDB failed to run aggregation pipeline"
	ErrDevDBStringNotObjectID        = "String cannot be converted to MongoDB ObjectID"

	ErrDevRabbitMQPublish = "RabbitMQ failed to publish message to queue '%s'"

	ErrDevMinioFailedToCreateObject = "Minio failed to create object in bucket '%s'"
	ErrDevMinioFailedToGetObject    = "Minio failed to get object from bucket '%s'"
	ErrDevMinioFailedToPresignURL   = "Minio failed to presign URL for bucket '%s'"

	ErrDevRedisLock   = "Redis failed to acquire or release lock"
	ErrDevRendererPDF = "Renderer failed to build prescription PDF"

	ErrDevSMTPSendEmail = "SMTP failed to send email through host '%s'"
)
