package utils

import (
	"mediplan-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("ai_provider", validateAIProvider)
	validate.RegisterValidation("event_type", validateEventType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAIProvider(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.AIProviderOpenAI || value == constvars.AIProviderGroq
}

func validateEventType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.EventTypeMedication ||
		value == constvars.EventTypeActivity ||
		value == constvars.EventTypeFollowUp
}
