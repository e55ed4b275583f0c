package contracts

import (
	"context"
	"io"
	"mime/multipart"
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/dto/requests"
	"mediplan-service/internal/pkg/dto/responses"
)

type DocumentUsecase interface {
	UploadDocument(ctx context.Context, patientID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.ReviewDocument, error)
	ListDocuments(ctx context.Context, request *requests.ListDocuments) ([]responses.ReviewDocument, int, error)
}

type DocumentRepository interface {
	CreateDocument(ctx context.Context, document *models.ReviewDocument) error
	FindDocumentsByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.ReviewDocument, int, error)
}
