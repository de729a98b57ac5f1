package prescriptions

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

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	DoctorRepository       contracts.DoctorRepository
	AppointmentRepository  contracts.AppointmentRepository
	AppointmentUsecase     contracts.AppointmentUsecase
	DocumentRenderer       contracts.DocumentRenderer
	Storage                contracts.Storage
	MailerService          contracts.MailerService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	appointmentUsecase contracts.AppointmentUsecase,
	documentRenderer contracts.DocumentRenderer,
	storage contracts.Storage,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			DoctorRepository:       doctorRepository,
			AppointmentRepository:  appointmentRepository,
			AppointmentUsecase:     appointmentUsecase,
			DocumentRenderer:       documentRenderer,
			Storage:                storage,
			MailerService:          mailerService,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) Issue(ctx context.Context, session *models.Session, request *requests.CreatePrescriptionRequest) (*responses.CreatePrescription, error) {
	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	patient, err := uc.DoctorRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	profile, err := uc.DoctorRepository.FindProfileByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrDoctorProfileNotFound(nil)
	}

	var followUpDate *time.Time
	if request.FollowUpDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", request.FollowUpDate, time.Local)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		followUpDate = &parsed
	}

	fee := request.ConsultationFee
	if fee == 0 {
		fee = profile.ConsultationFee
	}

	now := time.Now()
	prescription := &models.Prescription{
		PatientID:       request.PatientID,
		DoctorID:        session.UserID,
		AppointmentID:   request.AppointmentID,
		Diagnosis:       request.Diagnosis,
		Medicines:       mapMedicines(request.Medicines),
		Instructions:    request.Instructions,
		FollowUpDate:    followUpDate,
		ConsultationFee: fee,
		PaymentStatus:   constvars.PaymentStatusPending,
		DocumentStatus:  constvars.DocumentStatusAwaiting,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	prescriptionID, err := uc.PrescriptionRepository.Insert(ctx, prescription)
	if err != nil {
		return nil, err
	}
	prescription.ID = prescriptionID

	// Rendering is retried by the background worker, so a failure here leaves
	// the prescription awaiting its document instead of failing the issuance.
	if err := uc.renderAndFinish(ctx, prescription, session.Name, patient); err != nil {
		uc.Log.Error("prescriptionUsecase.Issue render deferred to retry worker",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
	}

	return &responses.CreatePrescription{
		ID:               prescriptionID,
		DocumentStatus:   prescription.DocumentStatus,
		DocumentLocation: prescription.DocumentLocation,
	}, nil
}

func (uc *prescriptionUsecase) RenderDocument(ctx context.Context, doctorID, prescriptionID string) (*responses.CreatePrescription, error) {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrPrescriptionNotFound(nil)
	}
	if prescription.DoctorID != doctorID {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	if prescription.DocumentStatus == constvars.DocumentStatusReady {
		return nil, exceptions.ErrDocumentAlreadyAttached(nil)
	}

	patient, err := uc.DoctorRepository.FindPatientByID(ctx, prescription.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	doctorName := ""
	if doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, prescription.DoctorID); err == nil && doctor != nil {
		doctorName = doctor.Name
	}

	if err := uc.renderAndFinish(ctx, prescription, doctorName, patient); err != nil {
		return nil, err
	}

	return &responses.CreatePrescription{
		ID:               prescription.ID,
		DocumentStatus:   prescription.DocumentStatus,
		DocumentLocation: prescription.DocumentLocation,
	}, nil
}

func (uc *prescriptionUsecase) UpdatePaymentStatus(ctx context.Context, doctorID, prescriptionID string, request *requests.UpdatePaymentStatusRequest) error {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if prescription == nil {
		return exceptions.ErrPrescriptionNotFound(nil)
	}
	if prescription.DoctorID != doctorID {
		return exceptions.ErrNotMatchRoleType(nil)
	}

	return uc.PrescriptionRepository.UpdatePaymentStatus(ctx, prescriptionID, request.PaymentStatus)
}

func (uc *prescriptionUsecase) ListForDoctor(ctx context.Context, doctorID string) ([]responses.Prescription, error) {
	prescriptions, err := uc.PrescriptionRepository.FindByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return uc.buildListing(ctx, prescriptions, true)
}

func (uc *prescriptionUsecase) ListForPatient(ctx context.Context, patientID string) ([]responses.Prescription, error) {
	prescriptions, err := uc.PrescriptionRepository.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return uc.buildListing(ctx, prescriptions, false)
}

// renderAndFinish runs the post-insert half of issuance: render and store the
// PDF, attach its location, complete the source appointment, notify the
// patient. It mutates the passed prescription on success.
func (uc *prescriptionUsecase) renderAndFinish(ctx context.Context, prescription *models.Prescription, doctorName string, patient *models.Patient) error {
	profile, err := uc.DoctorRepository.FindProfileByUserID(ctx, prescription.DoctorID)
	if err != nil {
		return err
	}

	location, err := uc.DocumentRenderer.RenderPrescription(ctx, &contracts.RenderPrescriptionInput{
		Prescription: prescription,
		Profile:      profile,
		DoctorName:   doctorName,
		PatientName:  patient.Name,
	})
	if err != nil {
		return err
	}

	if err := uc.PrescriptionRepository.AttachDocument(ctx, prescription.ID, location); err != nil {
		return err
	}
	prescription.DocumentStatus = constvars.DocumentStatusReady
	prescription.DocumentLocation = location

	if prescription.AppointmentID != "" {
		if err := uc.AppointmentUsecase.Complete(ctx, prescription.AppointmentID); err != nil {
			uc.Log.Error("prescriptionUsecase.renderAndFinish failed to complete appointment",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
				zap.String(constvars.LoggingAppointmentIDKey, prescription.AppointmentID),
				zap.Error(err),
			)
		}
	}

	uc.notifyPatient(ctx, prescription, doctorName, patient)
	return nil
}

func (uc *prescriptionUsecase) notifyPatient(ctx context.Context, prescription *models.Prescription, doctorName string, patient *models.Patient) {
	expiry := time.Duration(uc.InternalConfig.App.DocumentURLExpiryInHour) * time.Hour
	documentURL, err := uc.Storage.PresignedGetURL(ctx, prescription.DocumentLocation, expiry)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.notifyPatient failed to presign document URL",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
			zap.Error(err),
		)
	}

	message := &requests.NotificationMessage{
		Kind:            constvars.TemplatePrescriptionIssued,
		To:              patient.Email,
		PatientName:     patient.Name,
		DoctorName:      doctorName,
		DocumentURL:     documentURL,
		DocumentObject:  prescription.DocumentLocation,
		ConsultationFee: prescription.ConsultationFee,
	}

	if err := uc.MailerService.Publish(ctx, message); err != nil {
		uc.Log.Error("prescriptionUsecase.notifyPatient failed to queue notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
			zap.Error(err),
		)
	}
}

func (uc *prescriptionUsecase) buildListing(ctx context.Context, prescriptions []models.Prescription, withPatient bool) ([]responses.Prescription, error) {
	identityCache := make(map[string]*responses.IdentitySummary)
	expiry := time.Duration(uc.InternalConfig.App.DocumentURLExpiryInHour) * time.Hour

	result := make([]responses.Prescription, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		entry := responses.Prescription{
			ID:               prescription.ID,
			Diagnosis:        prescription.Diagnosis,
			Medicines:        prescription.Medicines,
			Instructions:     prescription.Instructions,
			FollowUpDate:     prescription.FollowUpDate,
			ConsultationFee:  prescription.ConsultationFee,
			PaymentStatus:    prescription.PaymentStatus,
			DocumentStatus:   prescription.DocumentStatus,
			DocumentLocation: prescription.DocumentLocation,
			CreatedAt:        prescription.CreatedAt,
		}

		if withPatient {
			summary, err := uc.identitySummary(ctx, prescription.PatientID, false, identityCache)
			if err != nil {
				return nil, err
			}
			entry.Patient = summary
		} else {
			summary, err := uc.identitySummary(ctx, prescription.DoctorID, true, identityCache)
			if err != nil {
				return nil, err
			}
			entry.Doctor = summary
		}

		if prescription.AppointmentID != "" {
			// A dangling appointment reference never breaks the listing.
			entry.Appointment = uc.appointmentSummary(ctx, prescription.AppointmentID)
		}

		if prescription.DocumentStatus == constvars.DocumentStatusReady && prescription.DocumentLocation != "" {
			if documentURL, err := uc.Storage.PresignedGetURL(ctx, prescription.DocumentLocation, expiry); err == nil {
				entry.DocumentURL = documentURL
			}
		}

		result = append(result, entry)
	}
	return result, nil
}

func (uc *prescriptionUsecase) appointmentSummary(ctx context.Context, appointmentID string) *responses.AppointmentSummary {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil || appointment == nil {
		return nil
	}
	return &responses.AppointmentSummary{
		ID:              appointment.ID,
		AppointmentDate: appointment.AppointmentDate,
		Status:          appointment.Status,
		Symptoms:        appointment.Symptoms,
	}
}

func (uc *prescriptionUsecase) identitySummary(ctx context.Context, userID string, isDoctor bool, cache map[string]*responses.IdentitySummary) (*responses.IdentitySummary, error) {
	if summary, ok := cache[userID]; ok {
		return summary, nil
	}

	var summary *responses.IdentitySummary
	if isDoctor {
		doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			summary = &responses.IdentitySummary{ID: doctor.ID, Name: doctor.Name, Email: doctor.Email}
		}
	} else {
		patient, err := uc.DoctorRepository.FindPatientByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if patient != nil {
			summary = &responses.IdentitySummary{ID: patient.ID, Name: patient.Name, Email: patient.Email}
		}
	}
	cache[userID] = summary
	return summary, nil
}

func mapMedicines(medicines []requests.MedicineRequest) []models.Medicine {
	result := make([]models.Medicine, 0, len(medicines))
	for _, medicine := range medicines {
		result = append(result, models.Medicine{
			Name:     medicine.Name,
			Dosage:   medicine.Dosage,
			Duration: medicine.Duration,
			Timing:   medicine.Timing,
		})
	}
	return result
}
