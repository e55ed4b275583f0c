package utils

import (
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/dto/responses"
)

func MapDocumentToResponse(document *models.ReviewDocument) responses.ReviewDocument {
	return responses.ReviewDocument{
		ID:          document.ID,
		PatientID:   document.PatientID,
		FileName:    document.FileName,
		ContentType: document.ContentType,
		SizeBytes:   document.SizeBytes,
		Status:      document.Status,
		CreatedAt:   document.CreatedAt.Format(constvars.DateLayout),
	}
}

func MapDocumentsToResponses(documents []models.ReviewDocument) []responses.ReviewDocument {
	mapped := make([]responses.ReviewDocument, 0, len(documents))
	for i := range documents {
		mapped = append(mapped, MapDocumentToResponse(&documents[i]))
	}
	return mapped
}
