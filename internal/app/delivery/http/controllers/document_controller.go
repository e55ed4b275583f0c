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

	"go.uber.org/zap"
)

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase contracts.DocumentUsecase
	BaseUrl         string
}

var (
	documentControllerInstance *DocumentController
	onceDocumentController     sync.Once
)

func NewDocumentController(logger *zap.Logger, documentUsecase contracts.DocumentUsecase, baseUrl string) *DocumentController {
	onceDocumentController.Do(func() {
		instance := &DocumentController{
			Log:             logger,
			DocumentUsecase: documentUsecase,
			BaseUrl:         baseUrl,
		}
		documentControllerInstance = instance
	})
	return documentControllerInstance
}

func (ctrl *DocumentController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("DocumentController.UploadDocument requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("DocumentController.UploadDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		ctrl.Log.Error("DocumentController.UploadDocument error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	patientID := r.FormValue("patientId")
	request := &requests.UploadDocument{PatientID: patientID}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("DocumentController.UploadDocument validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		ctrl.Log.Error("DocumentController.UploadDocument error reading file from form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.DocumentUsecase.UploadDocument(ctx, patientID, file, fileHeader)
	if err != nil {
		ctrl.Log.Error("DocumentController.UploadDocument error from usecase",
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

	ctrl.Log.Info("DocumentController.UploadDocument succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadDocumentSuccessMessage, response)
}

func (ctrl *DocumentController) ListDocuments(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("DocumentController.ListDocuments requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("DocumentController.ListDocuments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	pagination := utils.BuildPaginationRequest(r)
	request := &requests.ListDocuments{
		PatientID:  r.URL.Query().Get("patient_id"),
		Pagination: *pagination,
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("DocumentController.ListDocuments validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	documents, total, err := ctrl.DocumentUsecase.ListDocuments(ctx, request)
	if err != nil {
		ctrl.Log.Error("DocumentController.ListDocuments error from usecase",
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

	pageData := utils.BuildPaginationResponse(total, request.Page, request.PageSize, ctrl.BaseUrl+constvars.ResourceDocuments)

	ctrl.Log.Info("DocumentController.ListDocuments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("total", total),
	)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDocumentsSuccessMessage, documents, pageData)
}
