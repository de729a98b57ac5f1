package prescriptions

import (
	"context"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (r *PrescriptionMongoRepository) Insert(ctx context.Context, prescription *models.Prescription) (string, error) {
	result, err := r.Collection.InsertOne(ctx, prescription)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PrescriptionMongoRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var prescription models.Prescription
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) AttachDocument(ctx context.Context, prescriptionID, location string) error {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"documentStatus":   constvars.DocumentStatusReady,
		"documentLocation": location,
		"updatedAt":        time.Now(),
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PrescriptionMongoRepository) UpdatePaymentStatus(ctx context.Context, prescriptionID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"paymentStatus": status,
		"updatedAt":     time.Now(),
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PrescriptionMongoRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	return r.findAll(ctx, bson.M{"doctorId": doctorID})
}

func (r *PrescriptionMongoRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return r.findAll(ctx, bson.M{"patientId": patientID})
}

func (r *PrescriptionMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	prescriptions := make([]models.Prescription, 0)
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}

func (r *PrescriptionMongoRepository) FindAwaitingDocument(ctx context.Context, olderThan time.Time, limit int) ([]models.Prescription, error) {
	filter := bson.M{
		"documentStatus": constvars.DocumentStatusAwaiting,
		"createdAt":      bson.M{"$lte": olderThan},
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	prescriptions := make([]models.Prescription, 0)
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}

func (r *PrescriptionMongoRepository) SumFeeByMonth(ctx context.Context, doctorID string, since time.Time) ([]contracts.MonthSumRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"doctorId":      doctorID,
			"paymentStatus": constvars.PaymentStatusCompleted,
			"createdAt":     bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
			},
			"total": bson.M{"$sum": "$consultationFee"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":   0,
			"year":  "$_id.year",
			"month": "$_id.month",
			"total": 1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	rows := make([]contracts.MonthSumRow, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rows, nil
}

func (r *PrescriptionMongoRepository) CountByDiagnosis(ctx context.Context, doctorID string, limit int) ([]contracts.DiagnosisCountRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"doctorId": doctorID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$diagnosis",
			"count": bson.M{"$sum": 1},
		}}},
		// Name breaks count ties so the top-N cut is stable between runs.
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	rows := make([]contracts.DiagnosisCountRow, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rows, nil
}
