package responses

import "mediplan-service/internal/app/models"

type ParseInstruction struct {
	ParsedInstruction models.ParsedInstruction `json:"parsedInstruction"`
	Metadata          ParseInstructionMetadata `json:"metadata"`
}

type ParseInstructionMetadata struct {
	Provider  string `json:"provider"`
	Language  string `json:"language"`
	Model     string `json:"model"`
	Timestamp string `json:"timestamp"`
}
