package constvars

type ContextKey string

const (
	ResourceSchedules     = "schedules"
	ResourcePrescriptions = "prescriptions"
	ResourceInstructions  = "instructions"
	ResourceDocuments     = "documents"
)

const (
	EventTypeMedication = "medication"
	EventTypeActivity   = "activity"
	EventTypeFollowUp   = "followup"
)

const (
	EventIDMedicationFormat = "med-%d-%d"
	EventIDMedicationPRN    = "med-%d-prn"
	EventIDActivityFormat   = "act-%d-%d"
	EventIDFollowUp         = "followup-1"
)

const (
	FollowUpTitle       = "Follow-up Appointment"
	FollowUpDescription = "Scheduled follow-up appointment"
	FollowUpDefaultNote = "Regular check-up"
	FollowUpTime        = "09:00"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ActivityExpansionDuration is fed to the duration resolver for activity
// entries; the activity's own duration text is display only.
const ActivityExpansionDuration = "30 days"

// MaxExpansionIterations bounds the occurrence loop against malformed dates.
const MaxExpansionIterations = 10000

const (
	MongoCollectionPrescriptions      = "prescriptions"
	MongoCollectionParsedInstructions = "parsed_instructions"
	MongoCollectionScheduleEvents     = "schedule_events"
	MongoCollectionDocuments          = "review_documents"
)

const (
	RedisKeyScheduleFormat = "schedule:prescription:%s"
)

const (
	AIProviderOpenAI = "openai"
	AIProviderGroq   = "groq"

	AIDefaultModelOpenAI = "gpt-4o-mini"
	AIDefaultModelGroq   = "llama3-8b-8192"

	AILanguageEnglish = "en"
	AILanguageMalay   = "ms"

	AIDefaultTemperature = 0.3
	AIDefaultMaxTokens   = 1500
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDPLN_SVC_"
)
