package instructions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"mediplan-service/internal/app/config"
	"mediplan-service/internal/app/contracts"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	aiClientInstance contracts.InstructionAIClient
	onceAIClient     sync.Once
)

type aiClient struct {
	AIConfig   config.AppAI
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewAIClient(aiConfig config.AppAI, logger *zap.Logger) contracts.InstructionAIClient {
	onceAIClient.Do(func() {
		client := &aiClient{
			AIConfig: aiConfig,
			HTTPClient: &http.Client{
				Timeout: time.Duration(aiConfig.RequestTimeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
		aiClientInstance = client
	})
	return aiClientInstance
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *aiClient) CreateCompletion(ctx context.Context, provider, model, prompt string, temperature float64, maxTokens int) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("aiClient.CreateCompletion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderKey, provider),
		zap.String("model", model),
	)

	baseUrl, apiKey, err := c.providerEndpoint(provider)
	if err != nil {
		return "", err
	}

	requestJSON, err := json.Marshal(chatCompletionRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, baseUrl+"/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("aiClient.CreateCompletion error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("aiClient.CreateCompletion error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderKey, provider),
			zap.Error(err),
		)
		return "", exceptions.ErrAIProviderRequest(err, provider)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("aiClient.CreateCompletion provider returned non-OK status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderKey, provider),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return "", exceptions.ErrAIProviderStatus(fmt.Errorf("provider responded with status %d", resp.StatusCode), provider)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", exceptions.ErrDecodeResponse(err, provider)
	}
	if len(completion.Choices) == 0 {
		return "", exceptions.ErrAIProviderStatus(errors.New("provider returned no choices"), provider)
	}

	return completion.Choices[0].Message.Content, nil
}

func (c *aiClient) providerEndpoint(provider string) (string, string, error) {
	switch provider {
	case constvars.AIProviderOpenAI:
		if c.AIConfig.OpenAIAPIKey == "" {
			return "", "", exceptions.ErrAIMissingAPIKey(errors.New("missing API key"), provider)
		}
		return c.AIConfig.OpenAIBaseUrl, c.AIConfig.OpenAIAPIKey, nil
	case constvars.AIProviderGroq:
		if c.AIConfig.GroqAPIKey == "" {
			return "", "", exceptions.ErrAIMissingAPIKey(errors.New("missing API key"), provider)
		}
		return c.AIConfig.GroqBaseUrl, c.AIConfig.GroqAPIKey, nil
	default:
		return "", "", exceptions.ErrAIInvalidProvider(fmt.Errorf("unknown provider %q", provider))
	}
}
