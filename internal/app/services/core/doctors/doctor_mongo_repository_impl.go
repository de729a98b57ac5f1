package doctors

import (
	"context"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	UserCollection    *mongo.Collection
	ProfileCollection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		UserCollection:    db.Database(dbName).Collection(constvars.MongoCollectionUsers),
		ProfileCollection: db.Database(dbName).Collection(constvars.MongoCollectionDoctorProfiles),
	}
}

func (r *DoctorMongoRepository) FindDoctorByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doctor models.Doctor
	filter := bson.M{"_id": objectID, "role": constvars.RoleDoctor}
	err = r.UserCollection.FindOne(ctx, filter).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var patient models.Patient
	filter := bson.M{"_id": objectID, "role": constvars.RolePatient}
	err = r.UserCollection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *DoctorMongoRepository) FindProfileByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error) {
	var profile models.DoctorProfile
	err := r.ProfileCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *DoctorMongoRepository) FindAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	filter := bson.M{"role": constvars.RoleDoctor}
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.UserCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}
