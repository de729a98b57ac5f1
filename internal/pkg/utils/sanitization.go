package utils

import (
	"medibook-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreateAppointmentRequest(request *requests.CreateAppointmentRequest) {
	request.DoctorID = strings.TrimSpace(request.DoctorID)
	request.AppointmentDate = strings.TrimSpace(request.AppointmentDate)
	request.Symptoms = strings.TrimSpace(request.Symptoms)
	request.Type = strings.ToLower(strings.TrimSpace(request.Type))
	if request.Type == "" {
		request.Type = "regular"
	}
	request.Notes = strings.TrimSpace(request.Notes)
}

func SanitizeUpdateAppointmentStatusRequest(request *requests.UpdateAppointmentStatusRequest) {
	request.Status = strings.ToLower(strings.TrimSpace(request.Status))
	request.Reason = strings.TrimSpace(request.Reason)
}

func SanitizeCreatePrescriptionRequest(request *requests.CreatePrescriptionRequest) {
	request.PatientID = strings.TrimSpace(request.PatientID)
	request.AppointmentID = strings.TrimSpace(request.AppointmentID)
	request.Diagnosis = strings.TrimSpace(request.Diagnosis)
	request.Instructions = strings.TrimSpace(request.Instructions)
	request.FollowUpDate = strings.TrimSpace(request.FollowUpDate)
	for i := range request.Medicines {
		request.Medicines[i].Name = strings.TrimSpace(request.Medicines[i].Name)
		request.Medicines[i].Dosage = strings.TrimSpace(request.Medicines[i].Dosage)
		request.Medicines[i].Duration = strings.TrimSpace(request.Medicines[i].Duration)
		request.Medicines[i].Timing = strings.TrimSpace(request.Medicines[i].Timing)
	}
}
