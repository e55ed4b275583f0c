package prescriptions

import (
	"context"
	"mediplan-service/internal/app/contracts"
	"mediplan-service/internal/app/models"
	"mediplan-service/internal/pkg/constvars"
	"mediplan-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PrescriptionMongoRepository struct {
	PrescriptionCollection      *mongo.Collection
	ParsedInstructionCollection *mongo.Collection
	ScheduleEventCollection     *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	database := db.Database(dbName)
	return &PrescriptionMongoRepository{
		PrescriptionCollection:      database.Collection(constvars.MongoCollectionPrescriptions),
		ParsedInstructionCollection: database.Collection(constvars.MongoCollectionParsedInstructions),
		ScheduleEventCollection:     database.Collection(constvars.MongoCollectionScheduleEvents),
	}
}

func (repo *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) error {
	_, err := repo.PrescriptionCollection.InsertOne(ctx, prescription)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *PrescriptionMongoRepository) CreateParsedInstruction(ctx context.Context, instruction *models.StoredParsedInstruction) error {
	_, err := repo.ParsedInstructionCollection.InsertOne(ctx, instruction)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *PrescriptionMongoRepository) CreateScheduleEvents(ctx context.Context, events []models.StoredScheduleEvent) error {
	if len(events) == 0 {
		return nil
	}

	documents := make([]interface{}, len(events))
	for i, event := range events {
		documents[i] = event
	}

	_, err := repo.ScheduleEventCollection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *PrescriptionMongoRepository) FindPrescriptionByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	var prescription models.Prescription
	err := repo.PrescriptionCollection.FindOne(ctx, bson.M{"_id": prescriptionID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (repo *PrescriptionMongoRepository) FindScheduleEventsByPrescriptionID(ctx context.Context, prescriptionID string) ([]models.StoredScheduleEvent, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := repo.ScheduleEventCollection.Find(ctx, bson.M{"prescriptionId": prescriptionID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	events := make([]models.StoredScheduleEvent, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return events, nil
}
