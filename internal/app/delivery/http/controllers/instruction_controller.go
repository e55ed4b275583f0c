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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type InstructionController struct {
	Log                *zap.Logger
	InstructionUsecase contracts.InstructionUsecase
}

var (
	instructionControllerInstance *InstructionController
	onceInstructionController     sync.Once
)

func NewInstructionController(logger *zap.Logger, instructionUsecase contracts.InstructionUsecase) *InstructionController {
	onceInstructionController.Do(func() {
		instance := &InstructionController{
			Log:                logger,
			InstructionUsecase: instructionUsecase,
		}
		instructionControllerInstance = instance
	})
	return instructionControllerInstance
}

func (ctrl *InstructionController) ParseInstruction(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("InstructionController.ParseInstruction requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("InstructionController.ParseInstruction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ParseInstruction)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("InstructionController.ParseInstruction error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("InstructionController.ParseInstruction validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 45*time.Second)
	defer cancel()

	response, err := ctrl.InstructionUsecase.ParseInstruction(ctx, request)
	if err != nil {
		ctrl.Log.Error("InstructionController.ParseInstruction error from usecase",
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

	ctrl.Log.Info("InstructionController.ParseInstruction succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderKey, response.Metadata.Provider),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ParseInstructionSuccessMessage, response)
}
