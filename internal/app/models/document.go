package models

type ReviewDocument struct {
	ID          string `json:"id" bson:"_id"`
	PatientID   string `json:"patientId" bson:"patientId"`
	FileName    string `json:"fileName" bson:"fileName"`
	ObjectName  string `json:"objectName" bson:"objectName"`
	ContentType string `json:"contentType" bson:"contentType"`
	SizeBytes   int64  `json:"sizeBytes" bson:"sizeBytes"`
	Status      string `json:"status" bson:"status"`
	TimeModel   `bson:",inline"`
}

const DocumentStatusPendingReview = "pending_review"
