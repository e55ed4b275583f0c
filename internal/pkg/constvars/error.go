package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"uuid":     "must be a valid UUID",
	"datetime": "must match the %s date format",
	"dive":     "contains an invalid entry",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPrescriptionNotFound          = "prescription not found"
	ErrClientDocumentTooLarge              = "uploaded document exceeds the size limit"
	ErrClientAIProviderUnavailable         = "the instruction parser is currently unavailable"
	ErrClientAIResponseUnusable            = "the instruction could not be parsed into a schedule"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevCreateHTTPRequest     = "failed to create HTTP request"
	ErrDevDecodeResponse        = "failed to decode %s response"
	ErrDevCannotParseDate       = "cannot parse date"
	ErrDevCannotParseMultipart  = "cannot parse multipart form"
	ErrDevMissingRequestID      = "request id not found in request context"

	// Schedule engine messages
	ErrDevExpansionIterationCap = "occurrence expansion exceeded the iteration cap"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToFindDocument = "failed when do find document on database"
	ErrDevDocumentNotFound       = "document not found"

	// Redis messages
	ErrDevRedisSet    = "failed to store value into redis"
	ErrDevRedisGet    = "failed to get value from redis for key %s"
	ErrDevRedisDelete = "failed to delete value from redis"

	// Queue messages
	ErrDevQueuePublish = "failed to publish message to queue %s"

	// Storage messages
	ErrDevMinioCreateObject = "failed to create object in bucket %s"

	// AI provider messages
	ErrDevAIProviderRequest     = "ai provider %s request failed"
	ErrDevAIProviderStatus      = "ai provider %s replied with a non-200 status"
	ErrDevAIResponseNoJSON      = "no JSON object found in ai response"
	ErrDevAIResponseInvalidJSON = "ai response JSON does not match the parsed instruction shape"
	ErrDevAIInvalidProvider     = "unknown ai provider"
	ErrDevAIMissingAPIKey       = "missing api key for ai provider %s"
)
