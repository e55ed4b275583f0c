package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"mediplan-service/internal/app/contracts"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/dto/requests"
	"mediplan-service/internal/pkg/exceptions"
	"mediplan-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
}

var (
	prescriptionControllerInstance *PrescriptionController
	oncePrescriptionController     sync.Once
)

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase) *PrescriptionController {
	oncePrescriptionController.Do(func() {
		instance := &PrescriptionController{
			Log:                 logger,
			PrescriptionUsecase: prescriptionUsecase,
		}
		prescriptionControllerInstance = instance
	})
	return prescriptionControllerInstance
}

func (ctrl *PrescriptionController) StorePrescription(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PrescriptionController.StorePrescription requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PrescriptionController.StorePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.StorePrescription)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("PrescriptionController.StorePrescription error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("PrescriptionController.StorePrescription validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.PrescriptionUsecase.StorePrescription(ctx, request)
	if err != nil {
		ctrl.Log.Error("PrescriptionController.StorePrescription error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PrescriptionController.StorePrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, response.PrescriptionID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StorePrescriptionSuccessMessage, response)
}

func (ctrl *PrescriptionController) FindPrescriptionSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PrescriptionController.FindPrescriptionSchedule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PrescriptionController.FindPrescriptionSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.FindPrescriptionSchedule{
		PrescriptionID: chi.URLParam(r, "prescription_id"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("PrescriptionController.FindPrescriptionSchedule validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PrescriptionUsecase.FindPrescriptionSchedule(ctx, request.PrescriptionID)
	if err != nil {
		ctrl.Log.Error("PrescriptionController.FindPrescriptionSchedule error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PrescriptionController.FindPrescriptionSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, response.PrescriptionID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccessMessage, response)
}
