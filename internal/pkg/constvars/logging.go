package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingDocumentIDKey     = "document_id"
	LoggingProviderKey       = "provider"
	LoggingEventCountKey     = "event_count"
)
