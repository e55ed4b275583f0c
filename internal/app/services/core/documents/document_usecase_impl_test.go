package documents

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"mediplan-service/internal/app/config"
	"mediplan-service/internal/app/contracts"
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/dto/requests"
	"mediplan-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubDocumentRepository struct {
	created []models.ReviewDocument
	found   []models.ReviewDocument
	total   int
}

func (s *stubDocumentRepository) CreateDocument(ctx context.Context, document *models.ReviewDocument) error {
	s.created = append(s.created, *document)
	return nil
}

func (s *stubDocumentRepository) FindDocumentsByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.ReviewDocument, int, error) {
	return s.found, s.total, nil
}

type stubStorage struct {
	uploadedBucket string
	uploadedObject string
}

func (s *stubStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) (string, error) {
	s.uploadedBucket = bucketName
	s.uploadedObject = objectName
	return objectName, nil
}

func newTestDocumentUsecase(repo contracts.DocumentRepository, storage contracts.Storage) *documentUsecase {
	return &documentUsecase{
		DocumentRepository: repo,
		Storage:            storage,
		InternalConfig: &config.InternalConfig{
			Minio: config.AppMinio{
				DocumentBucketName:        "review-documents",
				DocumentMaxUploadSizeInMB: 1,
			},
		},
		Log: zap.NewNop(),
	}
}

func testFileHeader(filename string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set(constvars.HeaderContentType, "application/pdf")
	return &multipart.FileHeader{
		Filename: filename,
		Header:   header,
		Size:     size,
	}
}

func TestUploadDocument(t *testing.T) {
	t.Run("Uploads File And Stores Record", func(t *testing.T) {
		repo := &stubDocumentRepository{}
		storage := &stubStorage{}
		uc := newTestDocumentUsecase(repo, storage)

		response, err := uc.UploadDocument(context.Background(), "patient-1",
			bytes.NewReader([]byte("pdf-bytes")), testFileHeader("referral.pdf", 1024))
		assert.NoError(t, err)

		assert.Equal(t, "review-documents", storage.uploadedBucket)
		assert.Contains(t, storage.uploadedObject, ".pdf")

		assert.Len(t, repo.created, 1)
		created := repo.created[0]
		assert.Equal(t, "patient-1", created.PatientID)
		assert.Equal(t, "referral.pdf", created.FileName)
		assert.Equal(t, models.DocumentStatusPendingReview, created.Status)
		assert.Equal(t, int64(1024), created.SizeBytes)

		assert.Equal(t, created.ID, response.ID)
		assert.Equal(t, models.DocumentStatusPendingReview, response.Status)
	})

	t.Run("Oversized File Is Rejected", func(t *testing.T) {
		repo := &stubDocumentRepository{}
		uc := newTestDocumentUsecase(repo, &stubStorage{})

		response, err := uc.UploadDocument(context.Background(), "patient-1",
			bytes.NewReader(nil), testFileHeader("scan.pdf", 2*1024*1024))
		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		if assert.ErrorAs(t, err, &customErr) {
			assert.Equal(t, constvars.StatusRequestEntityTooLarge, customErr.StatusCode)
		}
		assert.Empty(t, repo.created, "nothing should be stored for a rejected upload")
	})
}

func TestListDocuments(t *testing.T) {
	repo := &stubDocumentRepository{
		found: []models.ReviewDocument{
			{ID: "doc-1", PatientID: "patient-1", FileName: "referral.pdf", Status: models.DocumentStatusPendingReview},
		},
		total: 1,
	}
	uc := newTestDocumentUsecase(repo, &stubStorage{})

	documents, total, err := uc.ListDocuments(context.Background(), &requests.ListDocuments{
		PatientID:  "patient-1",
		Pagination: requests.Pagination{Page: 1, PageSize: 10},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, documents, 1)
	assert.Equal(t, "doc-1", documents[0].ID)
}
