package utils

import (
	"fmt"
	"mediplan-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GeneratePrescriptionID() string {
	return uuid.NewString()
}

func GenerateDocumentID() string {
	return uuid.NewString()
}

func GenerateStorageID() string {
	return uuid.NewString()
}

func GenerateFileName(prefix, documentID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, documentID, timestamp, fileExtension)
}
