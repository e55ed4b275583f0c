package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Schedule-related messages
	GenerateScheduleSuccessMessage = "schedule generated successfully"
	GetScheduleSuccessMessage      = "get schedule successfully"

	// Prescription-related messages
	StorePrescriptionSuccessMessage = "parsed results and schedule stored successfully"

	// Instruction-related messages
	ParseInstructionSuccessMessage = "instruction parsed successfully"

	// Document-related messages
	UploadDocumentSuccessMessage = "document uploaded successfully"
	GetDocumentsSuccessMessage   = "get documents successfully"
)
