package instructions

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"mediplan-service/internal/app/contracts"
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/dto/requests"
	"mediplan-service/internal/pkg/dto/responses"
	"mediplan-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	instructionUsecaseInstance contracts.InstructionUsecase
	onceInstructionUsecase     sync.Once
)

type instructionUsecase struct {
	AIClient contracts.InstructionAIClient
	Log      *zap.Logger
}

func NewInstructionUsecase(aiClient contracts.InstructionAIClient, logger *zap.Logger) contracts.InstructionUsecase {
	onceInstructionUsecase.Do(func() {
		instance := &instructionUsecase{
			AIClient: aiClient,
			Log:      logger,
		}
		instructionUsecaseInstance = instance
	})
	return instructionUsecaseInstance
}

func (uc *instructionUsecase) ParseInstruction(ctx context.Context, request *requests.ParseInstruction) (*responses.ParseInstruction, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	provider := request.Provider
	if provider == "" {
		provider = constvars.AIProviderOpenAI
	}
	language := request.Language
	if language == "" {
		language = constvars.AILanguageEnglish
	}
	model := constvars.AIDefaultModelOpenAI
	if provider == constvars.AIProviderGroq {
		model = constvars.AIDefaultModelGroq
	}

	uc.Log.Info("instructionUsecase.ParseInstruction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderKey, provider),
	)

	prompt := buildParsePrompt(request.Instruction, language)
	completion, err := uc.AIClient.CreateCompletion(ctx, provider, model, prompt, constvars.AIDefaultTemperature, constvars.AIDefaultMaxTokens)
	if err != nil {
		uc.Log.Error("instructionUsecase.ParseInstruction error calling AI provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderKey, provider),
			zap.Error(err),
		)
		return nil, err
	}

	parsed, err := extractParsedInstruction(completion)
	if err != nil {
		uc.Log.Error("instructionUsecase.ParseInstruction error extracting JSON from completion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.ParseInstruction{
		ParsedInstruction: *parsed,
		Metadata: responses.ParseInstructionMetadata{
			Provider:  provider,
			Language:  language,
			Model:     model,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// extractParsedInstruction pulls the outermost JSON object out of the model
// reply. Models occasionally wrap the object in prose or code fences.
func extractParsedInstruction(completion string) (*models.ParsedInstruction, error) {
	start := strings.Index(completion, "{")
	end := strings.LastIndex(completion, "}")
	if start == -1 || end == -1 || end < start {
		return nil, exceptions.ErrAIResponseNoJSON(errors.New("no JSON object in completion"))
	}

	var parsed models.ParsedInstruction
	if err := json.Unmarshal([]byte(completion[start:end+1]), &parsed); err != nil {
		return nil, exceptions.ErrAIResponseInvalidJSON(err)
	}

	if parsed.Medications == nil {
		parsed.Medications = make([]models.Medication, 0)
	}
	if parsed.Activities == nil {
		parsed.Activities = make([]models.Activity, 0)
	}

	return &parsed, nil
}
