package contracts

import (
	"context"

	"medibook-service/internal/pkg/dto/responses"
)

type StatisticUsecase interface {
	AppointmentStats(ctx context.Context, doctorID string) (*responses.AppointmentStats, error)
	PrescriptionStats(ctx context.Context, doctorID string) (*responses.PrescriptionStats, error)
}

// Raw aggregation rows as they come back from the store, before zero-filling.

type StatusCountRow struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

type MonthCountRow struct {
	Year  int   `bson:"year"`
	Month int   `bson:"month"`
	Count int64 `bson:"count"`
}

type MonthSumRow struct {
	Year  int     `bson:"year"`
	Month int     `bson:"month"`
	Total float64 `bson:"total"`
}

type DiagnosisCountRow struct {
	Diagnosis string `bson:"_id"`
	Count     int64  `bson:"count"`
}
