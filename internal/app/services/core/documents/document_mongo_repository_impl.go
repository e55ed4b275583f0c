package documents

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

type DocumentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDocumentMongoRepository(db *mongo.Client, dbName string) contracts.DocumentRepository {
	return &DocumentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDocuments),
	}
}

func (repo *DocumentMongoRepository) CreateDocument(ctx context.Context, document *models.ReviewDocument) error {
	_, err := repo.Collection.InsertOne(ctx, document)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *DocumentMongoRepository) FindDocumentsByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.ReviewDocument, int, error) {
	filter := bson.M{"patientId": patientID}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	documents := make([]models.ReviewDocument, 0)
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return documents, int(total), nil
}
