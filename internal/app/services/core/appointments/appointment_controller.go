package appointments

import (
	"context"
	"net/http"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAppointmentRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateAppointmentRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.Create(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedSuccess, result)
}

func (ctrl *AppointmentController) ListDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	params := &requests.DoctorAppointmentListParams{
		Status: r.URL.Query().Get("status"),
		Date:   r.URL.Query().Get("date"),
	}
	if err := utils.ValidateStruct(params); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ListForDoctor(ctx, session.UserID, params)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, result)
}

func (ctrl *AppointmentController) ListPatientAppointments(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ListForPatient(ctx, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, result)
}

func (ctrl *AppointmentController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointment_id")
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "appointment_id"))
		return
	}

	request := new(requests.UpdateAppointmentStatusRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateAppointmentStatusRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ChangeStatus(ctx, appointmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentStatusUpdatedSuccess, result)
}
