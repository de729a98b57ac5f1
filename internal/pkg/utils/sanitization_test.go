package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	t.Run("Trims Whitespace", func(t *testing.T) {
		request := &requests.CreateAppointmentRequest{
			DoctorID:        "  66b1f0c2a1b2c3d4e5f60718  ",
			AppointmentDate: "  2026-09-01 10:30  ",
			Symptoms:        "  persistent cough  ",
			Type:            "  Regular  ",
			Notes:           "  morning preferred  ",
		}

		SanitizeCreateAppointmentRequest(request)

		assert.Equal(t, "66b1f0c2a1b2c3d4e5f60718", request.DoctorID, "doctor id should be trimmed")
		assert.Equal(t, "2026-09-01 10:30", request.AppointmentDate, "date should be trimmed")
		assert.Equal(t, "persistent cough", request.Symptoms, "symptoms should be trimmed")
		assert.Equal(t, "morning preferred", request.Notes, "notes should be trimmed")
	})

	t.Run("Type Lowercased", func(t *testing.T) {
		request := &requests.CreateAppointmentRequest{
			Type: "EMERGENCY",
		}

		SanitizeCreateAppointmentRequest(request)

		assert.Equal(t, "emergency", request.Type, "type should be lowercase")
	})

	t.Run("Empty Type Defaults To Regular", func(t *testing.T) {
		request := &requests.CreateAppointmentRequest{
			Type: "   ",
		}

		SanitizeCreateAppointmentRequest(request)

		assert.Equal(t, "regular", request.Type, "blank type should default to regular")
	})
}

func TestSanitizeUpdateAppointmentStatusRequest(t *testing.T) {
	request := &requests.UpdateAppointmentStatusRequest{
		Status: "  Confirmed  ",
		Reason: "  doctor unavailable  ",
	}

	SanitizeUpdateAppointmentStatusRequest(request)

	assert.Equal(t, "confirmed", request.Status, "status should be lowercase and trimmed")
	assert.Equal(t, "doctor unavailable", request.Reason, "reason should be trimmed")
}

func TestSanitizeCreatePrescriptionRequest(t *testing.T) {
	request := &requests.CreatePrescriptionRequest{
		PatientID:     "  66b1f0c2a1b2c3d4e5f60719  ",
		AppointmentID: "  66b1f0c2a1b2c3d4e5f6071a  ",
		Diagnosis:     "  Viral Fever  ",
		Instructions:  "  plenty of fluids  ",
		FollowUpDate:  "  2026-09-10  ",
		Medicines: []requests.MedicineRequest{
			{
				Name:     "  Paracetamol  ",
				Dosage:   "  500mg  ",
				Duration: "  5 days  ",
				Timing:   "  after meals  ",
			},
		},
	}

	SanitizeCreatePrescriptionRequest(request)

	assert.Equal(t, "66b1f0c2a1b2c3d4e5f60719", request.PatientID)
	assert.Equal(t, "66b1f0c2a1b2c3d4e5f6071a", request.AppointmentID)
	assert.Equal(t, "Viral Fever", request.Diagnosis)
	assert.Equal(t, "plenty of fluids", request.Instructions)
	assert.Equal(t, "2026-09-10", request.FollowUpDate)
	assert.Equal(t, "Paracetamol", request.Medicines[0].Name, "medicine fields should be trimmed")
	assert.Equal(t, "500mg", request.Medicines[0].Dosage)
	assert.Equal(t, "5 days", request.Medicines[0].Duration)
	assert.Equal(t, "after meals", request.Medicines[0].Timing)
}
