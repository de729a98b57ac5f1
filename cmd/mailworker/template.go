package main

import (
	"fmt"
	"regexp"

	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
)

var emailPattern = regexp.MustCompile(constvars.RegexEmail)

// validRecipient reports whether the queued address is deliverable at all.
// Malformed recipients are dropped instead of bouncing off the SMTP host on
// every redelivery.
func validRecipient(to string) bool {
	return emailPattern.MatchString(to)
}

// renderEmail maps a queued notification onto its subject and HTML body. The
// boolean reports whether the template kind is known.
func renderEmail(message *requests.NotificationMessage) (subject, body string, ok bool) {
	switch message.Kind {
	case constvars.TemplateNewAppointment:
		return constvars.EmailSubjectNewAppointment,
			fmt.Sprintf(constvars.EmailBodyNewAppointmentFormat, message.AppointmentDate, message.PatientName),
			true

	case constvars.TemplateConfirmed:
		return constvars.EmailSubjectConfirmed,
			fmt.Sprintf(constvars.EmailBodyConfirmedFormat, message.DoctorName, message.AppointmentDate),
			true

	case constvars.TemplateCancelled:
		reason := message.Reason
		if reason == "" {
			reason = constvars.EmailCancelledNoReasonFallback
		}
		return constvars.EmailSubjectCancelled,
			fmt.Sprintf(constvars.EmailBodyCancelledFormat, message.DoctorName, reason),
			true

	case constvars.TemplateRescheduled:
		return constvars.EmailSubjectRescheduled,
			fmt.Sprintf(constvars.EmailBodyRescheduledFormat, message.DoctorName, message.AppointmentDate),
			true

	case constvars.TemplateCompleted:
		return constvars.EmailSubjectCompleted,
			fmt.Sprintf(constvars.EmailBodyCompletedFormat, message.DoctorName, message.AppointmentDate),
			true

	case constvars.TemplateEmergency:
		return constvars.EmailSubjectEmergency,
			fmt.Sprintf(constvars.EmailBodyEmergencyFormat, message.DoctorName, message.AppointmentDate),
			true

	case constvars.TemplatePending:
		return constvars.EmailSubjectStatusChanged,
			fmt.Sprintf(constvars.EmailBodyStatusChangedFormat, message.Kind, message.DoctorName, message.AppointmentDate),
			true

	case constvars.TemplatePrescriptionIssued:
		return constvars.EmailSubjectPrescriptionIssued,
			fmt.Sprintf(constvars.EmailBodyPrescriptionIssuedFormat, message.DoctorName, message.ConsultationFee, message.DocumentURL),
			true

	case constvars.TemplatePasswordOTP:
		return constvars.EmailSubjectPasswordOTP,
			fmt.Sprintf(constvars.EmailBodyPasswordOTPFormat, message.OTP),
			true
	}

	return "", "", false
}
