package appointments

import (
	"context"
	"testing"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctor(ctx context.Context, doctorID string, filter *contracts.AppointmentListFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) CountByStatus(ctx context.Context, doctorID string) ([]contracts.StatusCountRow, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contracts.StatusCountRow), args.Error(1)
}

func (m *MockAppointmentRepository) CountByMonth(ctx context.Context, doctorID string, since time.Time) ([]contracts.MonthCountRow, error) {
	args := m.Called(ctx, doctorID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contracts.MonthCountRow), args.Error(1)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockDoctorRepository) FindProfileByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DoctorProfile), args.Error(1)
}

func (m *MockDoctorRepository) FindAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) Publish(ctx context.Context, message *requests.NotificationMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func newTestAppointmentUsecase(repo *MockAppointmentRepository, doctors *MockDoctorRepository, mailer *MockMailerService) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: repo,
		DoctorRepository:      doctors,
		MailerService:         mailer,
		InternalConfig:        &config.InternalConfig{},
		Log:                   zap.NewNop(),
	}
}

func patientSession() *models.Session {
	return &models.Session{
		UserID: "66b1f0c2a1b2c3d4e5f60719",
		Name:   "Asha Rao",
		Email:  "asha@example.com",
		Role:   "patient",
	}
}

func TestAppointmentUsecaseCreate(t *testing.T) {
	doctor := &models.Doctor{Identity: models.Identity{
		ID:    "66b1f0c2a1b2c3d4e5f60718",
		Name:  "Dr. Mehta",
		Email: "mehta@example.com",
	}}

	t.Run("Regular Booking Starts Pending And Notifies Doctor", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		doctors := new(MockDoctorRepository)
		mailer := new(MockMailerService)
		uc := newTestAppointmentUsecase(repo, doctors, mailer)

		doctors.On("FindDoctorByID", mock.Anything, doctor.ID).Return(doctor, nil)
		repo.On("Insert", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.Status == constvars.AppointmentStatusPending
		})).Return("66b1f0c2a1b2c3d4e5f6071a", nil)
		mailer.On("Publish", mock.Anything, mock.MatchedBy(func(message *requests.NotificationMessage) bool {
			return message.Kind == constvars.TemplateNewAppointment && message.To == doctor.Email
		})).Return(nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.NotificationSent
		})).Return(nil)

		result, err := uc.Create(context.Background(), patientSession(), &requests.CreateAppointmentRequest{
			DoctorID:        doctor.ID,
			AppointmentDate: "2026-09-01 10:30",
			Symptoms:        "persistent cough",
			Type:            constvars.AppointmentTypeRegular,
		})

		assert.NoError(t, err)
		assert.Equal(t, "66b1f0c2a1b2c3d4e5f6071a", result.ID)
		assert.Equal(t, constvars.AppointmentStatusPending, result.Status)
		repo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("Emergency Booking Skips Pending", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		doctors := new(MockDoctorRepository)
		mailer := new(MockMailerService)
		uc := newTestAppointmentUsecase(repo, doctors, mailer)

		doctors.On("FindDoctorByID", mock.Anything, doctor.ID).Return(doctor, nil)
		repo.On("Insert", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
			return appointment.Status == constvars.AppointmentStatusEmergency
		})).Return("66b1f0c2a1b2c3d4e5f6071b", nil)
		mailer.On("Publish", mock.Anything, mock.MatchedBy(func(message *requests.NotificationMessage) bool {
			return message.Kind == constvars.TemplateNewAppointment &&
				message.To == doctor.Email &&
				message.PatientName == "Asha Rao"
		})).Return(nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		result, err := uc.Create(context.Background(), patientSession(), &requests.CreateAppointmentRequest{
			DoctorID:        doctor.ID,
			AppointmentDate: "2026-09-01 10:30",
			Symptoms:        "chest pain",
			Type:            constvars.AppointmentTypeEmergency,
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusEmergency, result.Status, "emergency bookings should be created in the emergency status")
		mailer.AssertExpectations(t)
	})

	t.Run("Publish Failure Does Not Fail The Booking", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		doctors := new(MockDoctorRepository)
		mailer := new(MockMailerService)
		uc := newTestAppointmentUsecase(repo, doctors, mailer)

		doctors.On("FindDoctorByID", mock.Anything, doctor.ID).Return(doctor, nil)
		repo.On("Insert", mock.Anything, mock.Anything).Return("66b1f0c2a1b2c3d4e5f6071c", nil)
		mailer.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError)

		result, err := uc.Create(context.Background(), patientSession(), &requests.CreateAppointmentRequest{
			DoctorID:        doctor.ID,
			AppointmentDate: "2026-09-01 10:30",
			Type:            constvars.AppointmentTypeRegular,
		})

		assert.NoError(t, err, "a queue outage should never lose the booking")
		assert.NotNil(t, result)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Non Patient Is Rejected", func(t *testing.T) {
		uc := newTestAppointmentUsecase(new(MockAppointmentRepository), new(MockDoctorRepository), new(MockMailerService))

		session := patientSession()
		session.Role = "doctor"
		_, err := uc.Create(context.Background(), session, &requests.CreateAppointmentRequest{})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Unknown Doctor Returns Not Found", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		doctors := new(MockDoctorRepository)
		uc := newTestAppointmentUsecase(repo, doctors, new(MockMailerService))

		doctors.On("FindDoctorByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.Create(context.Background(), patientSession(), &requests.CreateAppointmentRequest{
			DoctorID:        "missing",
			AppointmentDate: "2026-09-01 10:30",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Unparseable Date Is A Bad Request", func(t *testing.T) {
		uc := newTestAppointmentUsecase(new(MockAppointmentRepository), new(MockDoctorRepository), new(MockMailerService))

		_, err := uc.Create(context.Background(), patientSession(), &requests.CreateAppointmentRequest{
			DoctorID:        "66b1f0c2a1b2c3d4e5f60718",
			AppointmentDate: "next tuesday",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestAppointmentUsecaseChangeStatus(t *testing.T) {
	existing := func() *models.Appointment {
		return &models.Appointment{
			ID:              "66b1f0c2a1b2c3d4e5f6071a",
			PatientID:       "66b1f0c2a1b2c3d4e5f60719",
			DoctorID:        "66b1f0c2a1b2c3d4e5f60718",
			AppointmentDate: time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC),
			Status:          constvars.AppointmentStatusPending,
		}
	}

	t.Run("Overwrites Status And Records Cancel Reason", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		doctors := new(MockDoctorRepository)
		mailer := new(MockMailerService)
		uc := newTestAppointmentUsecase(repo, doctors, mailer)

		appointment := existing()
		repo.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		doctors.On("FindPatientByID", mock.Anything, appointment.PatientID).Return(&models.Patient{Identity: models.Identity{
			ID:    appointment.PatientID,
			Name:  "Asha Rao",
			Email: "asha@example.com",
		}}, nil)
		doctors.On("FindDoctorByID", mock.Anything, appointment.DoctorID).Return(&models.Doctor{Identity: models.Identity{
			ID:   appointment.DoctorID,
			Name: "Dr. Mehta",
		}}, nil)
		mailer.On("Publish", mock.Anything, mock.MatchedBy(func(message *requests.NotificationMessage) bool {
			return message.Kind == constvars.AppointmentStatusCancelled &&
				message.To == "asha@example.com" &&
				message.Reason == "doctor unavailable"
		})).Return(nil)

		result, err := uc.ChangeStatus(context.Background(), appointment.ID, &requests.UpdateAppointmentStatusRequest{
			Status: constvars.AppointmentStatusCancelled,
			Reason: "doctor unavailable",
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, result.Status)
		assert.Equal(t, "doctor unavailable", result.CancelReason)
		mailer.AssertExpectations(t)
	})

	t.Run("Persists Before Notifying", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		doctors := new(MockDoctorRepository)
		mailer := new(MockMailerService)
		uc := newTestAppointmentUsecase(repo, doctors, mailer)

		appointment := existing()
		repo.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
		doctors.On("FindPatientByID", mock.Anything, appointment.PatientID).Return(nil, assert.AnError)

		result, err := uc.ChangeStatus(context.Background(), appointment.ID, &requests.UpdateAppointmentStatusRequest{
			Status: constvars.AppointmentStatusConfirmed,
		})

		assert.NoError(t, err, "an unresolvable recipient should not undo the status change")
		assert.Equal(t, constvars.AppointmentStatusConfirmed, result.Status)
		mailer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Appointment Returns Not Found", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(repo, new(MockDoctorRepository), new(MockMailerService))

		repo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.ChangeStatus(context.Background(), "missing", &requests.UpdateAppointmentStatusRequest{
			Status: constvars.AppointmentStatusConfirmed,
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestAppointmentUsecaseComplete(t *testing.T) {
	t.Run("Marks Completed Without Notification", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		mailer := new(MockMailerService)
		uc := newTestAppointmentUsecase(repo, new(MockDoctorRepository), mailer)

		appointment := &models.Appointment{
			ID:     "66b1f0c2a1b2c3d4e5f6071a",
			Status: constvars.AppointmentStatusConfirmed,
		}
		repo.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(updated *models.Appointment) bool {
			return updated.Status == constvars.AppointmentStatusCompleted
		})).Return(nil)

		err := uc.Complete(context.Background(), appointment.ID)

		assert.NoError(t, err)
		mailer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestAppointmentUsecaseListForDoctor(t *testing.T) {
	t.Run("Date Filter Bounds The Day", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		doctors := new(MockDoctorRepository)
		uc := newTestAppointmentUsecase(repo, doctors, new(MockMailerService))

		repo.On("FindByDoctor", mock.Anything, "66b1f0c2a1b2c3d4e5f60718", mock.MatchedBy(func(filter *contracts.AppointmentListFilter) bool {
			return filter.Status == constvars.AppointmentStatusPending &&
				filter.DayStart != nil && filter.DayEnd != nil &&
				filter.DayStart.Day() == 1 && filter.DayEnd.Day() == 1
		})).Return([]models.Appointment{}, nil)

		result, err := uc.ListForDoctor(context.Background(), "66b1f0c2a1b2c3d4e5f60718", &requests.DoctorAppointmentListParams{
			Status: constvars.AppointmentStatusPending,
			Date:   "2026-09-01",
		})

		assert.NoError(t, err)
		assert.Empty(t, result)
		repo.AssertExpectations(t)
	})

	t.Run("Attaches Patient Summaries", func(t *testing.T) {
		repo := new(MockAppointmentRepository)
		doctors := new(MockDoctorRepository)
		uc := newTestAppointmentUsecase(repo, doctors, new(MockMailerService))

		repo.On("FindByDoctor", mock.Anything, "66b1f0c2a1b2c3d4e5f60718", mock.Anything).Return([]models.Appointment{
			{ID: "a1", PatientID: "p1"},
			{ID: "a2", PatientID: "p1"},
		}, nil)
		doctors.On("FindPatientByID", mock.Anything, "p1").Return(&models.Patient{Identity: models.Identity{
			ID:   "p1",
			Name: "Asha Rao",
		}}, nil).Once()

		result, err := uc.ListForDoctor(context.Background(), "66b1f0c2a1b2c3d4e5f60718", &requests.DoctorAppointmentListParams{})

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Asha Rao", result[0].Patient.Name)
		doctors.AssertNumberOfCalls(t, "FindPatientByID", 1)
	})
}
