package statistics

import (
	"context"
	"sync"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type statisticUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	PrescriptionRepository contracts.PrescriptionRepository
	Log                    *zap.Logger
}

var (
	statisticUsecaseInstance contracts.StatisticUsecase
	onceStatisticUsecase     sync.Once
)

func NewStatisticUsecase(
	appointmentRepository contracts.AppointmentRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	logger *zap.Logger,
) contracts.StatisticUsecase {
	onceStatisticUsecase.Do(func() {
		statisticUsecaseInstance = &statisticUsecase{
			AppointmentRepository:  appointmentRepository,
			PrescriptionRepository: prescriptionRepository,
			Log:                    logger,
		}
	})
	return statisticUsecaseInstance
}

func (uc *statisticUsecase) AppointmentStats(ctx context.Context, doctorID string) (*responses.AppointmentStats, error) {
	statusRows, err := uc.AppointmentRepository.CountByStatus(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	months := utils.TrailingMonths(time.Now(), constvars.StatisticsTrailingMonths)
	monthRows, err := uc.AppointmentRepository.CountByMonth(ctx, doctorID, months[0])
	if err != nil {
		return nil, err
	}

	return &responses.AppointmentStats{
		StatusCounts: fillStatusCounts(statusRows),
		Monthly:      fillMonthCounts(months, monthRows),
	}, nil
}

func (uc *statisticUsecase) PrescriptionStats(ctx context.Context, doctorID string) (*responses.PrescriptionStats, error) {
	months := utils.TrailingMonths(time.Now(), constvars.StatisticsTrailingMonths)
	revenueRows, err := uc.PrescriptionRepository.SumFeeByMonth(ctx, doctorID, months[0])
	if err != nil {
		return nil, err
	}

	diagnosisRows, err := uc.PrescriptionRepository.CountByDiagnosis(ctx, doctorID, constvars.StatisticsTopDiagnosesLimit)
	if err != nil {
		return nil, err
	}

	topDiagnoses := make([]responses.DiagnosisCount, 0, len(diagnosisRows))
	for _, row := range diagnosisRows {
		topDiagnoses = append(topDiagnoses, responses.DiagnosisCount{
			Diagnosis: row.Diagnosis,
			Count:     row.Count,
		})
	}

	return &responses.PrescriptionStats{
		MonthlyRevenue: fillMonthRevenue(months, revenueRows),
		TopDiagnoses:   topDiagnoses,
	}, nil
}

// fillStatusCounts reports every known status, zero included, in a stable
// order regardless of which statuses the aggregation returned.
func fillStatusCounts(rows []contracts.StatusCountRow) []responses.StatusCount {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	statuses := []string{
		constvars.AppointmentStatusPending,
		constvars.AppointmentStatusConfirmed,
		constvars.AppointmentStatusCancelled,
		constvars.AppointmentStatusCompleted,
		constvars.AppointmentStatusEmergency,
	}

	result := make([]responses.StatusCount, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, responses.StatusCount{
			Status: status,
			Count:  counts[status],
		})
	}
	return result
}

func fillMonthCounts(months []time.Time, rows []contracts.MonthCountRow) []responses.MonthBucket {
	counts := make(map[[2]int]int64, len(rows))
	for _, row := range rows {
		counts[[2]int{row.Year, row.Month}] = row.Count
	}

	result := make([]responses.MonthBucket, 0, len(months))
	for _, month := range months {
		key := [2]int{month.Year(), int(month.Month())}
		result = append(result, responses.MonthBucket{
			Year:  month.Year(),
			Month: int(month.Month()),
			Count: counts[key],
		})
	}
	return result
}

func fillMonthRevenue(months []time.Time, rows []contracts.MonthSumRow) []responses.MonthRevenue {
	totals := make(map[[2]int]float64, len(rows))
	for _, row := range rows {
		totals[[2]int{row.Year, row.Month}] = row.Total
	}

	result := make([]responses.MonthRevenue, 0, len(months))
	for _, month := range months {
		key := [2]int{month.Year(), int(month.Month())}
		result = append(result, responses.MonthRevenue{
			Year:  month.Year(),
			Month: int(month.Month()),
			Total: totals[key],
		})
	}
	return result
}
