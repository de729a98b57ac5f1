package contracts

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	List(ctx context.Context) ([]responses.Doctor, error)
	GetByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
}

// DoctorRepository reads the external user directory and profile store. All
// lookups return (nil, nil) when the record is absent.
type DoctorRepository interface {
	FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindProfileByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error)
	FindAllDoctors(ctx context.Context) ([]models.Doctor, error)
}
