package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByDoctor(ctx context.Context, doctorID string, filter *contracts.AppointmentListFilter) ([]models.Appointment, error) {
	query := bson.M{"doctorId": doctorID}
	if filter != nil {
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if filter.DayStart != nil && filter.DayEnd != nil {
			query["appointmentDate"] = bson.M{
				"$gte": *filter.DayStart,
				"$lte": *filter.DayEnd,
			}
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "appointmentDate", Value: 1}})
	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "appointmentDate", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":           appointment.Status,
		"notes":            appointment.Notes,
		"cancelReason":     appointment.CancelReason,
		"notificationSent": appointment.NotificationSent,
		"updatedAt":        appointment.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) CountByStatus(ctx context.Context, doctorID string) ([]contracts.StatusCountRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"doctorId": doctorID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	rows := make([]contracts.StatusCountRow, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rows, nil
}

func (r *AppointmentMongoRepository) CountByMonth(ctx context.Context, doctorID string, since time.Time) ([]contracts.MonthCountRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"doctorId":        doctorID,
			"appointmentDate": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$appointmentDate"},
				"month": bson.M{"$month": "$appointmentDate"},
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":   0,
			"year":  "$_id.year",
			"month": "$_id.month",
			"count": 1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	rows := make([]contracts.MonthCountRow, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rows, nil
}
