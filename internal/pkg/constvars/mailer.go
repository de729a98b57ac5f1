package constvars

const (
	EmailSenderName = "Medibook Clinic"
)

// Subjects keyed by template kind.
const (
	EmailSubjectNewAppointment     = "New Appointment Request"
	EmailSubjectConfirmed          = "Appointment Confirmed"
	EmailSubjectCancelled          = "Appointment Cancelled"
	EmailSubjectRescheduled        = "Appointment Rescheduled"
	EmailSubjectCompleted          = "Appointment Completed"
	EmailSubjectEmergency          = "Emergency Appointment"
	EmailSubjectStatusChanged      = "Appointment Update"
	EmailSubjectPrescriptionIssued = "Your Digital Prescription"
	EmailSubjectPasswordOTP        = "Password Reset OTP"
)

// HTML body formats. Placeholders follow the order documented per format.
const (
	// date, patient name
	EmailBodyNewAppointmentFormat = "<h1>New Appointment Request</h1><p>A new appointment has been scheduled for %s</p><p>Patient: %s</p>"
	// doctor name, date
	EmailBodyConfirmedFormat = "<h1>Appointment Confirmed</h1><p>Your appointment with Dr. %s has been confirmed.</p><p>Date &amp; Time: %s</p>"
	// doctor name, reason
	EmailBodyCancelledFormat = "<h1>Appointment Cancelled</h1><p>Your appointment with Dr. %s has been cancelled.</p><p>Reason: %s</p>"
	// doctor name, date
	EmailBodyRescheduledFormat = "<h1>Appointment Rescheduled</h1><p>Your appointment with Dr. %s has been rescheduled.</p><p>New Date &amp; Time: %s</p>"
	// doctor name, date
	EmailBodyCompletedFormat = "<h1>Appointment Completed</h1><p>Your appointment with Dr. %s on %s has been completed.</p>"
	// doctor name, date
	EmailBodyEmergencyFormat = "<h1>Emergency Appointment</h1><p>Your emergency appointment with Dr. %s has been registered for %s.</p>"
	// status, doctor name, date
	EmailBodyStatusChangedFormat = "<h1>Appointment Update</h1><p>Your appointment is now '%s'.</p><p>Doctor: Dr. %s</p><p>Date &amp; Time: %s</p>"
	// doctor name, fee, download link
	EmailBodyPrescriptionIssuedFormat = "<h1>Digital Prescription</h1><p>Dear Patient,</p><p>Dr. %s has generated your prescription.</p><p>Consultation Fee: %.2f</p><p>Please find your prescription attached below.</p><p>You can also download it from here: <a href=\"%s\">Download Prescription</a></p>"
	// otp
	EmailBodyPasswordOTPFormat = "<h1>Password Reset OTP</h1><p>Your OTP for password reset is: <strong>%s</strong></p><p>This OTP will expire in 10 minutes.</p><p>If you didn't request this, please ignore this email.</p>"

	EmailCancelledNoReasonFallback = "No reason provided"

	EmailPrescriptionAttachmentName = "prescription.pdf"
)

const (
	RegexEmail = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
)
