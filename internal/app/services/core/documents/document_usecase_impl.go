package documents

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"sync"
	"time"

	"mediplan-service/internal/app/config"
	"mediplan-service/internal/app/contracts"
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/dto/requests"
	"mediplan-service/internal/pkg/dto/responses"
	"mediplan-service/internal/pkg/exceptions"
	"mediplan-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	documentUsecaseInstance contracts.DocumentUsecase
	onceDocumentUsecase     sync.Once
)

type documentUsecase struct {
	DocumentRepository contracts.DocumentRepository
	Storage            contracts.Storage
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewDocumentUsecase(
	documentRepository contracts.DocumentRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DocumentUsecase {
	onceDocumentUsecase.Do(func() {
		instance := &documentUsecase{
			DocumentRepository: documentRepository,
			Storage:            storage,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		documentUsecaseInstance = instance
	})
	return documentUsecaseInstance
}

func (uc *documentUsecase) UploadDocument(ctx context.Context, patientID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.ReviewDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("documentUsecase.UploadDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	maxSizeBytes := uc.InternalConfig.Minio.DocumentMaxUploadSizeInMB * 1024 * 1024
	if fileHeader.Size > maxSizeBytes {
		return nil, exceptions.ErrDocumentTooLarge(fmt.Errorf("file size %d exceeds limit %d", fileHeader.Size, maxSizeBytes))
	}

	documentID := utils.GenerateDocumentID()
	objectName := utils.GenerateFileName("document", documentID, filepath.Ext(fileHeader.Filename))

	_, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.InternalConfig.Minio.DocumentBucketName, objectName)
	if err != nil {
		uc.Log.Error("documentUsecase.UploadDocument error uploading file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentIDKey, documentID),
			zap.Error(err),
		)
		return nil, err
	}

	now := time.Now().UTC()
	document := &models.ReviewDocument{
		ID:          documentID,
		PatientID:   patientID,
		FileName:    fileHeader.Filename,
		ObjectName:  objectName,
		ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
		SizeBytes:   fileHeader.Size,
		Status:      models.DocumentStatusPendingReview,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if err := uc.DocumentRepository.CreateDocument(ctx, document); err != nil {
		uc.Log.Error("documentUsecase.UploadDocument error storing document record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentIDKey, documentID),
			zap.Error(err),
		)
		return nil, err
	}

	response := utils.MapDocumentToResponse(document)
	return &response, nil
}

func (uc *documentUsecase) ListDocuments(ctx context.Context, request *requests.ListDocuments) ([]responses.ReviewDocument, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("documentUsecase.ListDocuments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	documents, total, err := uc.DocumentRepository.FindDocumentsByPatientID(ctx, request.PatientID, request.Page, request.PageSize)
	if err != nil {
		return nil, 0, err
	}

	return utils.MapDocumentsToResponses(documents), total, nil
}
