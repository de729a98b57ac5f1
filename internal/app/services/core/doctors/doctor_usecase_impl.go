package doctors

import (
	"context"
	"sync"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) List(ctx context.Context) ([]responses.Doctor, error) {
	doctors, err := uc.DoctorRepository.FindAllDoctors(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		entry := responses.Doctor{
			ID:    doctor.ID,
			Name:  doctor.Name,
			Email: doctor.Email,
		}

		profile, err := uc.DoctorRepository.FindProfileByUserID(ctx, doctor.ID)
		if err != nil {
			return nil, err
		}
		entry.Profile = profile

		result = append(result, entry)
	}
	return result, nil
}

func (uc *doctorUsecase) GetByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	profile, err := uc.DoctorRepository.FindProfileByUserID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	return &responses.Doctor{
		ID:      doctor.ID,
		Name:    doctor.Name,
		Email:   doctor.Email,
		Profile: profile,
	}, nil
}
