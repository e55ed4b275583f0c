package responses

type ReviewDocument struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}
