package statistics

import (
	"context"
	"testing"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"

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

type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) Insert(ctx context.Context, prescription *models.Prescription) (string, error) {
	args := m.Called(ctx, prescription)
	return args.String(0), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	args := m.Called(ctx, prescriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) AttachDocument(ctx context.Context, prescriptionID, location string) error {
	args := m.Called(ctx, prescriptionID, location)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) UpdatePaymentStatus(ctx context.Context, prescriptionID, status string) error {
	args := m.Called(ctx, prescriptionID, status)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) FindAwaitingDocument(ctx context.Context, olderThan time.Time, limit int) ([]models.Prescription, error) {
	args := m.Called(ctx, olderThan, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) SumFeeByMonth(ctx context.Context, doctorID string, since time.Time) ([]contracts.MonthSumRow, error) {
	args := m.Called(ctx, doctorID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contracts.MonthSumRow), args.Error(1)
}

func (m *MockPrescriptionRepository) CountByDiagnosis(ctx context.Context, doctorID string, limit int) ([]contracts.DiagnosisCountRow, error) {
	args := m.Called(ctx, doctorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contracts.DiagnosisCountRow), args.Error(1)
}

func TestStatisticUsecaseAppointmentStats(t *testing.T) {
	t.Run("Zero Fills Missing Statuses In Stable Order", func(t *testing.T) {
		appointments := new(MockAppointmentRepository)
		prescriptions := new(MockPrescriptionRepository)
		uc := &statisticUsecase{
			AppointmentRepository:  appointments,
			PrescriptionRepository: prescriptions,
			Log:                    zap.NewNop(),
		}

		appointments.On("CountByStatus", mock.Anything, "doc1").Return([]contracts.StatusCountRow{
			{Status: constvars.AppointmentStatusCompleted, Count: 7},
			{Status: constvars.AppointmentStatusPending, Count: 2},
		}, nil)
		appointments.On("CountByMonth", mock.Anything, "doc1", mock.Anything).Return([]contracts.MonthCountRow{}, nil)

		result, err := uc.AppointmentStats(context.Background(), "doc1")

		assert.NoError(t, err)
		assert.Equal(t, []responses.StatusCount{
			{Status: constvars.AppointmentStatusPending, Count: 2},
			{Status: constvars.AppointmentStatusConfirmed, Count: 0},
			{Status: constvars.AppointmentStatusCancelled, Count: 0},
			{Status: constvars.AppointmentStatusCompleted, Count: 7},
			{Status: constvars.AppointmentStatusEmergency, Count: 0},
		}, result.StatusCounts)
	})

	t.Run("Reports Six Ascending Month Buckets", func(t *testing.T) {
		appointments := new(MockAppointmentRepository)
		uc := &statisticUsecase{
			AppointmentRepository:  appointments,
			PrescriptionRepository: new(MockPrescriptionRepository),
			Log:                    zap.NewNop(),
		}

		now := time.Now()
		current := [2]int{now.Year(), int(now.Month())}
		appointments.On("CountByStatus", mock.Anything, "doc1").Return([]contracts.StatusCountRow{}, nil)
		appointments.On("CountByMonth", mock.Anything, "doc1", mock.Anything).Return([]contracts.MonthCountRow{
			{Year: current[0], Month: current[1], Count: 4},
		}, nil)

		result, err := uc.AppointmentStats(context.Background(), "doc1")

		assert.NoError(t, err)
		assert.Len(t, result.Monthly, 6)
		last := result.Monthly[5]
		assert.Equal(t, current[0], last.Year)
		assert.Equal(t, current[1], last.Month)
		assert.Equal(t, int64(4), last.Count)
		for _, bucket := range result.Monthly[:5] {
			assert.Equal(t, int64(0), bucket.Count, "months without bookings should still appear")
		}
	})
}

func TestStatisticUsecasePrescriptionStats(t *testing.T) {
	t.Run("Fills Revenue And Passes Diagnoses Through", func(t *testing.T) {
		prescriptions := new(MockPrescriptionRepository)
		uc := &statisticUsecase{
			AppointmentRepository:  new(MockAppointmentRepository),
			PrescriptionRepository: prescriptions,
			Log:                    zap.NewNop(),
		}

		now := time.Now()
		prescriptions.On("SumFeeByMonth", mock.Anything, "doc1", mock.Anything).Return([]contracts.MonthSumRow{
			{Year: now.Year(), Month: int(now.Month()), Total: 1500},
		}, nil)
		prescriptions.On("CountByDiagnosis", mock.Anything, "doc1", constvars.StatisticsTopDiagnosesLimit).Return([]contracts.DiagnosisCountRow{
			{Diagnosis: "Viral Fever", Count: 12},
			{Diagnosis: "Migraine", Count: 5},
		}, nil)

		result, err := uc.PrescriptionStats(context.Background(), "doc1")

		assert.NoError(t, err)
		assert.Len(t, result.MonthlyRevenue, 6)
		assert.Equal(t, float64(1500), result.MonthlyRevenue[5].Total)
		assert.Equal(t, float64(0), result.MonthlyRevenue[0].Total)
		assert.Equal(t, []responses.DiagnosisCount{
			{Diagnosis: "Viral Fever", Count: 12},
			{Diagnosis: "Migraine", Count: 5},
		}, result.TopDiagnoses)
	})

	t.Run("Keeps Count Ties In Name Order", func(t *testing.T) {
		prescriptions := new(MockPrescriptionRepository)
		uc := &statisticUsecase{
			AppointmentRepository:  new(MockAppointmentRepository),
			PrescriptionRepository: prescriptions,
			Log:                    zap.NewNop(),
		}

		// The store sorts count desc then diagnosis asc; the usecase must not
		// reorder equal counts.
		prescriptions.On("SumFeeByMonth", mock.Anything, "doc1", mock.Anything).Return([]contracts.MonthSumRow{}, nil)
		prescriptions.On("CountByDiagnosis", mock.Anything, "doc1", mock.Anything).Return([]contracts.DiagnosisCountRow{
			{Diagnosis: "Hypertension", Count: 8},
			{Diagnosis: "Asthma", Count: 3},
			{Diagnosis: "Migraine", Count: 3},
			{Diagnosis: "Viral Fever", Count: 3},
		}, nil)

		result, err := uc.PrescriptionStats(context.Background(), "doc1")

		assert.NoError(t, err)
		assert.Equal(t, []responses.DiagnosisCount{
			{Diagnosis: "Hypertension", Count: 8},
			{Diagnosis: "Asthma", Count: 3},
			{Diagnosis: "Migraine", Count: 3},
			{Diagnosis: "Viral Fever", Count: 3},
		}, result.TopDiagnoses)
	})

	t.Run("Requests The Trailing Window Start", func(t *testing.T) {
		prescriptions := new(MockPrescriptionRepository)
		uc := &statisticUsecase{
			AppointmentRepository:  new(MockAppointmentRepository),
			PrescriptionRepository: prescriptions,
			Log:                    zap.NewNop(),
		}

		prescriptions.On("SumFeeByMonth", mock.Anything, "doc1", mock.MatchedBy(func(since time.Time) bool {
			return since.Day() == 1 && since.Before(time.Now())
		})).Return([]contracts.MonthSumRow{}, nil)
		prescriptions.On("CountByDiagnosis", mock.Anything, "doc1", mock.Anything).Return([]contracts.DiagnosisCountRow{}, nil)

		_, err := uc.PrescriptionStats(context.Background(), "doc1")

		assert.NoError(t, err)
		prescriptions.AssertExpectations(t)
	})
}
