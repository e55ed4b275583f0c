package contracts

import (
	"context"
	"mediplan-service/internal/pkg/dto/requests"
	"mediplan-service/internal/pkg/dto/responses"
)

type InstructionUsecase interface {
	ParseInstruction(ctx context.Context, request *requests.ParseInstruction) (*responses.ParseInstruction, error)
}

// InstructionAIClient talks to an OpenAI-compatible chat-completions API and
// returns the raw text of the first choice.
type InstructionAIClient interface {
	CreateCompletion(ctx context.Context, provider, model, prompt string, temperature float64, maxTokens int) (string, error)
}
