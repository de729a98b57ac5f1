package doctors

import (
	"context"
	"testing"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

func TestDoctorUsecaseList(t *testing.T) {
	t.Run("Attaches Profiles Where Present", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		uc := &doctorUsecase{DoctorRepository: repo, Log: zap.NewNop()}

		repo.On("FindAllDoctors", mock.Anything).Return([]models.Doctor{
			{Identity: models.Identity{ID: "doc1", Name: "Dr. Mehta", Email: "mehta@example.com"}},
			{Identity: models.Identity{ID: "doc2", Name: "Dr. Verma", Email: "verma@example.com"}},
		}, nil)
		repo.On("FindProfileByUserID", mock.Anything, "doc1").Return(&models.DoctorProfile{
			UserID:         "doc1",
			Specialization: "Cardiology",
		}, nil)
		repo.On("FindProfileByUserID", mock.Anything, "doc2").Return(nil, nil)

		result, err := uc.List(context.Background())

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Cardiology", result[0].Profile.Specialization)
		assert.Nil(t, result[1].Profile, "a doctor without a profile still appears in the directory")
	})
}

func TestDoctorUsecaseGetByID(t *testing.T) {
	t.Run("Returns Doctor With Profile", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		uc := &doctorUsecase{DoctorRepository: repo, Log: zap.NewNop()}

		repo.On("FindDoctorByID", mock.Anything, "doc1").Return(&models.Doctor{Identity: models.Identity{
			ID:   "doc1",
			Name: "Dr. Mehta",
		}}, nil)
		repo.On("FindProfileByUserID", mock.Anything, "doc1").Return(&models.DoctorProfile{
			UserID:          "doc1",
			ConsultationFee: 500,
		}, nil)

		result, err := uc.GetByID(context.Background(), "doc1")

		assert.NoError(t, err)
		assert.Equal(t, "Dr. Mehta", result.Name)
		assert.Equal(t, float64(500), result.Profile.ConsultationFee)
	})

	t.Run("Unknown Doctor Returns Not Found", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		uc := &doctorUsecase{DoctorRepository: repo, Log: zap.NewNop()}

		repo.On("FindDoctorByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.GetByID(context.Background(), "missing")

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
