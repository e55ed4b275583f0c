package requests

type UploadDocument struct {
	PatientID string `validate:"required,uuid"`
}

type ListDocuments struct {
	PatientID string `validate:"required,uuid"`
	Pagination
}
