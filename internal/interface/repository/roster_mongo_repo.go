package repository

import (
	"context"
	"errors"
	"time"

	"roster-service/internal/domain/entity"
	"roster-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRosterRepository implements RosterRepository on the document backend
type MongoRosterRepository struct {
	collection *mongo.Collection
}

type rosterDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FlightID      string             `bson:"flightId"`
	GeneratedDate time.Time          `bson:"generatedDate"`
	RosterData    entity.Roster      `bson:"rosterData"`
}

// NewMongoRosterRepository creates a new mongo roster repository
func NewMongoRosterRepository(db *mongo.Database) repository.RosterRepository {
	collection := db.Collection("rosters")

	// Index for the flightId + most-recent-first lookup
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "flightId", Value: 1},
			{Key: "generatedDate", Value: -1},
		},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoRosterRepository{collection: collection}
}

// FindLatestByFlightID returns the most recent document for the flight id
func (r *MongoRosterRepository) FindLatestByFlightID(ctx context.Context, flightID string) (*entity.StoredRoster, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "generatedDate", Value: -1}})

	var doc rosterDocument
	err := r.collection.FindOne(ctx, bson.M{"flightId": flightID}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return docToStored(&doc), nil
}

// FindAll returns every stored roster document
func (r *MongoRosterRepository) FindAll(ctx context.Context) ([]entity.StoredRoster, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []rosterDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	stored := make([]entity.StoredRoster, 0, len(docs))
	for i := range docs {
		stored = append(stored, *docToStored(&docs[i]))
	}
	return stored, nil
}

// Upsert overwrites the most recent document for flightID in place, or
// inserts a new document when none exists
func (r *MongoRosterRepository) Upsert(ctx context.Context, flightID string, roster *entity.Roster) error {
	existing, err := r.FindLatestByFlightID(ctx, flightID)
	if err != nil {
		return err
	}

	if existing == nil {
		doc := rosterDocument{
			ID:            primitive.NewObjectID(),
			FlightID:      flightID,
			GeneratedDate: roster.GeneratedDate,
			RosterData:    *roster,
		}
		_, err := r.collection.InsertOne(ctx, doc)
		return err
	}

	id, err := primitive.ObjectIDFromHex(existing.ID)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"generatedDate": roster.GeneratedDate,
		"rosterData":    roster,
	}})
	return err
}

func docToStored(doc *rosterDocument) *entity.StoredRoster {
	return &entity.StoredRoster{
		ID:            doc.ID.Hex(),
		FlightID:      doc.FlightID,
		GeneratedDate: doc.GeneratedDate,
		Roster:        doc.RosterData,
	}
}
