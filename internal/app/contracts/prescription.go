package contracts

import (
	"context"
	"time"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type PrescriptionUsecase interface {
	Issue(ctx context.Context, session *models.Session, request *requests.CreatePrescriptionRequest) (*responses.CreatePrescription, error)

	// RenderDocument re-runs the render-and-attach step for a prescription
	// that is still awaiting its document. Safe to call repeatedly; it never
	// creates a second prescription record.
	RenderDocument(ctx context.Context, doctorID, prescriptionID string) (*responses.CreatePrescription, error)

	UpdatePaymentStatus(ctx context.Context, doctorID, prescriptionID string, request *requests.UpdatePaymentStatusRequest) error
	ListForDoctor(ctx context.Context, doctorID string) ([]responses.Prescription, error)
	ListForPatient(ctx context.Context, patientID string) ([]responses.Prescription, error)
}

type PrescriptionRepository interface {
	Insert(ctx context.Context, prescription *models.Prescription) (prescriptionID string, err error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	AttachDocument(ctx context.Context, prescriptionID, location string) error
	UpdatePaymentStatus(ctx context.Context, prescriptionID, status string) error
	FindByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Prescription, error)
	FindAwaitingDocument(ctx context.Context, olderThan time.Time, limit int) ([]models.Prescription, error)
	SumFeeByMonth(ctx context.Context, doctorID string, since time.Time) ([]MonthSumRow, error)
	CountByDiagnosis(ctx context.Context, doctorID string, limit int) ([]DiagnosisCountRow, error)
}
