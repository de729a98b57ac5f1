package doctors

import (
	"context"
	"net/http"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.List(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorListSuccess, result)
}

func (ctrl *DoctorController) GetDoctorByID(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctor_id")
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "doctor_id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.GetByID(ctx, doctorID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorGetSuccess, result)
}
