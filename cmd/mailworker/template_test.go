package main

import (
	"testing"

	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestRenderEmail(t *testing.T) {
	t.Run("New Appointment", func(t *testing.T) {
		subject, body, ok := renderEmail(&requests.NotificationMessage{
			Kind:            constvars.TemplateNewAppointment,
			PatientName:     "Asha Rao",
			AppointmentDate: "2026-09-01 10:30",
		})

		assert.True(t, ok)
		assert.Equal(t, constvars.EmailSubjectNewAppointment, subject)
		assert.Contains(t, body, "2026-09-01 10:30")
		assert.Contains(t, body, "Asha Rao")
	})

	t.Run("Confirmed", func(t *testing.T) {
		subject, body, ok := renderEmail(&requests.NotificationMessage{
			Kind:            constvars.TemplateConfirmed,
			DoctorName:      "Mehta",
			AppointmentDate: "2026-09-01 10:30",
		})

		assert.True(t, ok)
		assert.Equal(t, constvars.EmailSubjectConfirmed, subject)
		assert.Contains(t, body, "Dr. Mehta")
	})

	t.Run("Cancelled With Reason", func(t *testing.T) {
		_, body, ok := renderEmail(&requests.NotificationMessage{
			Kind:       constvars.TemplateCancelled,
			DoctorName: "Mehta",
			Reason:     "doctor unavailable",
		})

		assert.True(t, ok)
		assert.Contains(t, body, "doctor unavailable")
	})

	t.Run("Cancelled Without Reason Uses Fallback", func(t *testing.T) {
		_, body, ok := renderEmail(&requests.NotificationMessage{
			Kind:       constvars.TemplateCancelled,
			DoctorName: "Mehta",
		})

		assert.True(t, ok)
		assert.Contains(t, body, constvars.EmailCancelledNoReasonFallback)
	})

	t.Run("Pending Uses The Status Changed Template", func(t *testing.T) {
		subject, body, ok := renderEmail(&requests.NotificationMessage{
			Kind:            constvars.TemplatePending,
			DoctorName:      "Mehta",
			AppointmentDate: "2026-09-01 10:30",
		})

		assert.True(t, ok)
		assert.Equal(t, constvars.EmailSubjectStatusChanged, subject)
		assert.Contains(t, body, "'pending'")
	})

	t.Run("Prescription Issued", func(t *testing.T) {
		subject, body, ok := renderEmail(&requests.NotificationMessage{
			Kind:            constvars.TemplatePrescriptionIssued,
			DoctorName:      "Mehta",
			ConsultationFee: 500,
			DocumentURL:     "https://files.example.com/signed",
		})

		assert.True(t, ok)
		assert.Equal(t, constvars.EmailSubjectPrescriptionIssued, subject)
		assert.Contains(t, body, "500.00")
		assert.Contains(t, body, "https://files.example.com/signed")
	})

	t.Run("Password OTP", func(t *testing.T) {
		subject, body, ok := renderEmail(&requests.NotificationMessage{
			Kind: constvars.TemplatePasswordOTP,
			OTP:  "482910",
		})

		assert.True(t, ok)
		assert.Equal(t, constvars.EmailSubjectPasswordOTP, subject)
		assert.Contains(t, body, "482910")
	})

	t.Run("Malformed Recipients Are Rejected", func(t *testing.T) {
		assert.True(t, validRecipient("asha@example.com"))
		assert.True(t, validRecipient("asha.rao+clinic@example.co.in"))
		assert.False(t, validRecipient(""), "an empty recipient should never reach the dialer")
		assert.False(t, validRecipient("not-an-address"))
		assert.False(t, validRecipient("asha@"))
	})

	t.Run("Unknown Kind Is Not Rendered", func(t *testing.T) {
		subject, body, ok := renderEmail(&requests.NotificationMessage{Kind: "carrier-pigeon"})

		assert.False(t, ok, "unknown template kinds should be dropped, not sent blank")
		assert.Empty(t, subject)
		assert.Empty(t, body)
	})
}
