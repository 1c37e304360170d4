package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// AppointmentRepository implements ports.AppointmentRepository using
// MongoDB. Reads run an aggregation $lookup so the referenced patient is
// always resolved in the same round trip; an appointment whose patient no
// longer resolves is filtered out rather than exposed dangling.
type AppointmentRepository struct {
	col *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(collectionAppointments)}
}

type appointmentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PatientID   primitive.ObjectID `bson:"patient_id"`
	ClinicianID primitive.ObjectID `bson:"clinician_id"`
	ScheduledAt time.Time          `bson:"scheduled_at"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
	Patient     []patientDoc       `bson:"patient,omitempty"` // populated by $lookup
}

func (d *appointmentDoc) toDomain() *domain.Appointment {
	appt := &domain.Appointment{
		ID:          d.ID.Hex(),
		ClinicianID: d.ClinicianID.Hex(),
		ScheduledAt: d.ScheduledAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if len(d.Patient) > 0 {
		appt.Patient = *d.Patient[0].toDomain()
	}
	return appt
}

func (r *AppointmentRepository) Insert(ctx context.Context, rec *ports.AppointmentRecord) (string, error) {
	patientID, err := primitive.ObjectIDFromHex(rec.PatientID)
	if err != nil {
		return "", domain.ErrPatientRef
	}
	clinicianID, err := primitive.ObjectIDFromHex(rec.ClinicianID)
	if err != nil {
		return "", domain.ErrClinicianRef
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := appointmentDoc{
		ID:          primitive.NewObjectID(),
		PatientID:   patientID,
		ClinicianID: clinicianID,
		ScheduledAt: rec.ScheduledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert appointment: %w", err)
	}
	return doc.ID.Hex(), nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	appts, err := r.aggregate(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if len(appts) == 0 {
		return nil, domain.ErrAppointmentNotFound
	}
	return appts[0], nil
}

func (r *AppointmentRepository) Update(ctx context.Context, rec *ports.AppointmentRecord) error {
	oid, err := primitive.ObjectIDFromHex(rec.ID)
	if err != nil {
		return domain.ErrAppointmentNotFound
	}
	patientID, err := primitive.ObjectIDFromHex(rec.PatientID)
	if err != nil {
		return domain.ErrPatientRef
	}
	clinicianID, err := primitive.ObjectIDFromHex(rec.ClinicianID)
	if err != nil {
		return domain.ErrClinicianRef
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"patient_id":   patientID,
		"clinician_id": clinicianID,
		"scheduled_at": rec.ScheduledAt,
		"updated_at":   time.Now().UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAppointmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, nil
	}
	return r.aggregate(ctx, bson.M{"patient_id": oid})
}

func (r *AppointmentRepository) ListByClinician(ctx context.Context, clinicianID string) ([]*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(clinicianID)
	if err != nil {
		return nil, nil
	}
	return r.aggregate(ctx, bson.M{"clinician_id": oid})
}

func (r *AppointmentRepository) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	return r.aggregate(ctx, bson.M{})
}

func (r *AppointmentRepository) DeleteByPatient(ctx context.Context, patientID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"patient_id": oid})
	if err != nil {
		return 0, fmt.Errorf("delete appointments by patient: %w", err)
	}
	return res.DeletedCount, nil
}

// aggregate runs the shared match + patient $lookup pipeline. The trailing
// non-empty match drops appointments whose patient no longer exists, keeping
// the never-dangling read contract.
func (r *AppointmentRepository) aggregate(ctx context.Context, match bson.M) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionPatients,
			"localField":   "patient_id",
			"foreignField": "_id",
			"as":           "patient",
		}}},
		{{Key: "$match", Value: bson.M{"patient": bson.M{"$ne": bson.A{}}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate appointments: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Appointment
	for cur.Next(ctx) {
		var doc appointmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureIndexes creates the query indexes for the appointments collection.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "patient_id", Value: 1}}},
		{Keys: bson.D{{Key: "clinician_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
