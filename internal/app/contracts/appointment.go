package contracts

import (
	"context"
	"time"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateAppointmentRequest) (*responses.CreateAppointment, error)
	ListForDoctor(ctx context.Context, doctorID string, params *requests.DoctorAppointmentListParams) ([]responses.Appointment, error)
	ListForPatient(ctx context.Context, patientID string) ([]responses.Appointment, error)
	ChangeStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatusRequest) (*responses.UpdateAppointmentStatus, error)

	// Complete flips an appointment to completed without emitting a status
	// notification; the issuance flow notifies with its own template instead.
	Complete(ctx context.Context, appointmentID string) error
}

// AppointmentListFilter narrows a doctor's listing. DayStart/DayEnd bound the
// appointment date inclusively on both ends when non-nil.
type AppointmentListFilter struct {
	Status   string
	DayStart *time.Time
	DayEnd   *time.Time
}

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID string, filter *AppointmentListFilter) ([]models.Appointment, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	CountByStatus(ctx context.Context, doctorID string) ([]StatusCountRow, error)
	CountByMonth(ctx context.Context, doctorID string, since time.Time) ([]MonthCountRow, error)
}
