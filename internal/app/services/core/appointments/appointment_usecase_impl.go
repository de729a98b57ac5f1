package appointments

import (
	"context"
	"sync"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	MailerService         contracts.MailerService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			MailerService:         mailerService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateAppointmentRequest) (*responses.CreateAppointment, error) {
	if !session.IsPatient() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	appointmentDate, err := parseAppointmentDate(request.AppointmentDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	// Emergency bookings skip the pending stage entirely.
	status := constvars.AppointmentStatusPending
	if request.Type == constvars.AppointmentTypeEmergency {
		status = constvars.AppointmentStatusEmergency
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID:       session.UserID,
		DoctorID:        request.DoctorID,
		AppointmentDate: appointmentDate,
		Status:          status,
		Symptoms:        request.Symptoms,
		Type:            request.Type,
		Notes:           request.Notes,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	appointmentID, err := uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.notifyDoctor(ctx, appointment, session, doctor)

	return &responses.CreateAppointment{
		ID:              appointmentID,
		Status:          status,
		AppointmentDate: appointmentDate,
	}, nil
}

func (uc *appointmentUsecase) ListForDoctor(ctx context.Context, doctorID string, params *requests.DoctorAppointmentListParams) ([]responses.Appointment, error) {
	filter := &contracts.AppointmentListFilter{Status: params.Status}

	if params.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", params.Date, time.Local)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dayStart, dayEnd := utils.DayRange(day)
		filter.DayStart = &dayStart
		filter.DayEnd = &dayEnd
	}

	appointments, err := uc.AppointmentRepository.FindByDoctor(ctx, doctorID, filter)
	if err != nil {
		return nil, err
	}

	return uc.buildListing(ctx, appointments, true)
}

func (uc *appointmentUsecase) ListForPatient(ctx context.Context, patientID string) ([]responses.Appointment, error) {
	appointments, err := uc.AppointmentRepository.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return uc.buildListing(ctx, appointments, false)
}

func (uc *appointmentUsecase) ChangeStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatusRequest) (*responses.UpdateAppointmentStatus, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	appointment.Status = request.Status
	if request.Reason != "" {
		appointment.CancelReason = request.Reason
	}
	appointment.UpdatedAt = time.Now()

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		return nil, err
	}

	uc.notifyPatient(ctx, appointment)

	return &responses.UpdateAppointmentStatus{
		ID:           appointment.ID,
		Status:       appointment.Status,
		CancelReason: appointment.CancelReason,
	}, nil
}

func (uc *appointmentUsecase) Complete(ctx context.Context, appointmentID string) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	appointment.Status = constvars.AppointmentStatusCompleted
	appointment.UpdatedAt = time.Now()
	return uc.AppointmentRepository.Update(ctx, appointment)
}

// notifyDoctor queues the booking notification. A publish failure never fails
// the booking itself; notificationSent stays false so the record shows it.
func (uc *appointmentUsecase) notifyDoctor(ctx context.Context, appointment *models.Appointment, session *models.Session, doctor *models.Doctor) {
	// Every booking category announces itself to the doctor the same way; the
	// emergency template is patient-facing and only used for status notices.
	message := &requests.NotificationMessage{
		Kind:            constvars.TemplateNewAppointment,
		To:              doctor.Email,
		PatientName:     session.Name,
		DoctorName:      doctor.Name,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02 15:04"),
	}

	if err := uc.MailerService.Publish(ctx, message); err != nil {
		uc.Log.Error("appointmentUsecase.notifyDoctor failed to queue notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return
	}

	appointment.NotificationSent = true
	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.notifyDoctor failed to flag notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) notifyPatient(ctx context.Context, appointment *models.Appointment) {
	patient, err := uc.DoctorRepository.FindPatientByID(ctx, appointment.PatientID)
	if err != nil || patient == nil {
		uc.Log.Error("appointmentUsecase.notifyPatient could not resolve patient",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return
	}

	doctorName := ""
	if doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, appointment.DoctorID); err == nil && doctor != nil {
		doctorName = doctor.Name
	}

	message := &requests.NotificationMessage{
		Kind:            appointment.Status,
		To:              patient.Email,
		PatientName:     patient.Name,
		DoctorName:      doctorName,
		AppointmentDate: appointment.AppointmentDate.Format("2006-01-02 15:04"),
		Reason:          appointment.CancelReason,
	}

	if err := uc.MailerService.Publish(ctx, message); err != nil {
		uc.Log.Error("appointmentUsecase.notifyPatient failed to queue notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return
	}

	appointment.NotificationSent = true
	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.notifyPatient failed to flag notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) buildListing(ctx context.Context, appointments []models.Appointment, withPatient bool) ([]responses.Appointment, error) {
	doctorCache := make(map[string]*responses.IdentitySummary)
	patientCache := make(map[string]*responses.IdentitySummary)

	result := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		entry := responses.Appointment{
			ID:               appointment.ID,
			AppointmentDate:  appointment.AppointmentDate,
			Status:           appointment.Status,
			Symptoms:         appointment.Symptoms,
			Type:             appointment.Type,
			Notes:            appointment.Notes,
			CancelReason:     appointment.CancelReason,
			NotificationSent: appointment.NotificationSent,
			CreatedAt:        appointment.CreatedAt,
		}

		if withPatient {
			summary, err := uc.patientSummary(ctx, appointment.PatientID, patientCache)
			if err != nil {
				return nil, err
			}
			entry.Patient = summary
		} else {
			summary, err := uc.doctorSummary(ctx, appointment.DoctorID, doctorCache)
			if err != nil {
				return nil, err
			}
			entry.Doctor = summary
		}

		result = append(result, entry)
	}
	return result, nil
}

func (uc *appointmentUsecase) doctorSummary(ctx context.Context, doctorID string, cache map[string]*responses.IdentitySummary) (*responses.IdentitySummary, error) {
	if summary, ok := cache[doctorID]; ok {
		return summary, nil
	}

	doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	var summary *responses.IdentitySummary
	if doctor != nil {
		summary = &responses.IdentitySummary{
			ID:    doctor.ID,
			Name:  doctor.Name,
			Email: doctor.Email,
		}
	}
	cache[doctorID] = summary
	return summary, nil
}

func (uc *appointmentUsecase) patientSummary(ctx context.Context, patientID string, cache map[string]*responses.IdentitySummary) (*responses.IdentitySummary, error) {
	if summary, ok := cache[patientID]; ok {
		return summary, nil
	}

	patient, err := uc.DoctorRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	var summary *responses.IdentitySummary
	if patient != nil {
		summary = &responses.IdentitySummary{
			ID:    patient.ID,
			Name:  patient.Name,
			Email: patient.Email,
		}
	}
	cache[patientID] = summary
	return summary, nil
}

func parseAppointmentDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", raw, time.Local)
}
