package statistics

import (
	"context"
	"net/http"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type StatisticController struct {
	Log              *zap.Logger
	StatisticUsecase contracts.StatisticUsecase
}

func NewStatisticController(logger *zap.Logger, statisticUsecase contracts.StatisticUsecase) *StatisticController {
	return &StatisticController{
		Log:              logger,
		StatisticUsecase: statisticUsecase,
	}
}

func (ctrl *StatisticController) GetAppointmentStats(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.StatisticUsecase.AppointmentStats(ctx, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentStatsSuccess, result)
}

func (ctrl *StatisticController) GetPrescriptionStats(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.StatisticUsecase.PrescriptionStats(ctx, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionStatsSuccess, result)
}
