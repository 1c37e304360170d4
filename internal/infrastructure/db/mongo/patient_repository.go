package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
)

// PatientRepository implements ports.PatientRepository using MongoDB.
type PatientRepository struct {
	col *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *PatientRepository {
	return &PatientRepository{col: db.Collection(collectionPatients)}
}

type patientDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"first_name"`
	LastName  string             `bson:"last_name"`
	Phone     string             `bson:"phone,omitempty"`
	Email     string             `bson:"email,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *patientDoc) toDomain() *domain.Patient {
	return &domain.Patient{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Insert persists a new patient. Synced patients arrive with an explicit id
// (the account's); inserting the same id twice trips the unique _id
// constraint and is reported as domain.ErrPatientExists, which is what makes
// the sync race-free. Walk-in patients get a fresh ObjectID.
func (r *PatientRepository) Insert(ctx context.Context, p *domain.Patient) error {
	doc := patientDoc{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.ID != "" {
		oid, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return fmt.Errorf("insert patient: bad id %q: %w", p.ID, err)
		}
		doc.ID = oid
	} else {
		doc.ID = primitive.NewObjectID()
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrPatientExists
		}
		return fmt.Errorf("insert patient: %w", err)
	}

	p.ID = doc.ID.Hex()
	return nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id string) (*domain.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPatientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc patientDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PatientRepository) List(ctx context.Context) ([]*domain.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer cur.Close(ctx)

	return decodePatients(ctx, cur)
}

// Search matches the term case-insensitively as a substring of the first or
// last name. The term is quoted so user input cannot inject regex syntax.
func (r *PatientRepository) Search(ctx context.Context, term string) ([]*domain.Patient, error) {
	if term == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"first_name": pattern},
		bson.M{"last_name": pattern},
	}}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	defer cur.Close(ctx)

	return decodePatients(ctx, cur)
}

func (r *PatientRepository) Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrPatientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"phone":      p.Phone,
		"email":      p.Email,
		"updated_at": p.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPatientNotFound
	}
	return p, nil
}

func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPatientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func decodePatients(ctx context.Context, cur *mongo.Cursor) ([]*domain.Patient, error) {
	var out []*domain.Patient
	for cur.Next(ctx) {
		var doc patientDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode patient: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}
