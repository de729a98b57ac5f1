package prescriptions

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

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
}

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase) *PrescriptionController {
	return &PrescriptionController{
		Log:                 logger,
		PrescriptionUsecase: prescriptionUsecase,
	}
}

func (ctrl *PrescriptionController) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePrescriptionRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreatePrescriptionRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	// PDF rendering and object storage sit on this path, give it more room.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.Issue(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PrescriptionCreatedSuccess, result)
}

func (ctrl *PrescriptionController) RenderPrescriptionDocument(w http.ResponseWriter, r *http.Request) {
	prescriptionID := chi.URLParam(r, "prescription_id")
	if prescriptionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "prescription_id"))
		return
	}

	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.RenderDocument(ctx, session.UserID, prescriptionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionDocumentReadySuccess, result)
}

func (ctrl *PrescriptionController) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	prescriptionID := chi.URLParam(r, "prescription_id")
	if prescriptionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "prescription_id"))
		return
	}

	request := new(requests.UpdatePaymentStatusRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

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

	if err := ctrl.PrescriptionUsecase.UpdatePaymentStatus(ctx, session.UserID, prescriptionID, request); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionPaymentUpdatedSuccess, nil)
}

func (ctrl *PrescriptionController) ListDoctorPrescriptions(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.ListForDoctor(ctx, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionListSuccess, result)
}

func (ctrl *PrescriptionController) ListPatientPrescriptions(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.ListForPatient(ctx, session.UserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionListSuccess, result)
}
