package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobportal/portal-api/internal/core/domain"
)

const collectionApplications = "applications"

type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

type applicationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Job       primitive.ObjectID `bson:"job"`
	Applicant primitive.ObjectID `bson:"applicant"`
	AppliedAt time.Time          `bson:"appliedAt"`
}

type jobSummaryDoc struct {
	ID    primitive.ObjectID `bson:"_id"`
	Title string             `bson:"title"`
}

// applicationViewDoc is an application after the job and applicant lookups.
type applicationViewDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Job       *jobSummaryDoc     `bson:"jobInfo,omitempty"`
	Applicant *userSummaryDoc    `bson:"applicantInfo,omitempty"`
	AppliedAt time.Time          `bson:"appliedAt"`
}

func (d applicationViewDoc) toDomain() domain.ApplicationView {
	v := domain.ApplicationView{
		ID:        d.ID.Hex(),
		Applicant: d.Applicant.toDomain(),
		AppliedAt: d.AppliedAt.UTC(),
	}
	if d.Job != nil {
		v.Job = &domain.JobSummary{ID: d.Job.ID.Hex(), Title: d.Job.Title}
	}
	return v
}

// Create inserts app and sets its ID. The unique (job, applicant) index turns
// a concurrent duplicate into domain.ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	jobID, err := primitive.ObjectIDFromHex(app.JobID)
	if err != nil {
		return domain.ErrJobNotFound
	}
	applicantID, err := primitive.ObjectIDFromHex(app.ApplicantID)
	if err != nil {
		return fmt.Errorf("%w: invalid applicant id", domain.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := applicationDoc{
		ID:        primitive.NewObjectID(),
		Job:       jobID,
		Applicant: applicantID,
		AppliedAt: app.AppliedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}
	app.ID = doc.ID.Hex()
	return nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, jobID, applicantID string) (bool, error) {
	job, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return false, nil
	}
	applicant, err := primitive.ObjectIDFromHex(applicantID)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"job": job, "applicant": applicant}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count applications: %w", err)
	}
	return n > 0, nil
}

// ListByJob returns the applications to jobID in the order they were made.
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.ApplicationView, error) {
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return []domain.ApplicationView{}, nil
	}
	return r.aggregate(ctx, bson.M{"job": oid}, 1)
}

// List returns every application, newest first.
func (r *ApplicationRepository) List(ctx context.Context) ([]domain.ApplicationView, error) {
	return r.aggregate(ctx, bson.M{}, -1)
}

func (r *ApplicationRepository) aggregate(ctx context.Context, match bson.M, order int) ([]domain.ApplicationView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "appliedAt", Value: order}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionJobs},
			{Key: "localField", Value: "job"},
			{Key: "foreignField", Value: "_id"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 1}, {Key: "title", Value: 1}}}},
			}},
			{Key: "as", Value: "jobInfo"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$jobInfo"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
	pipeline = append(pipeline, lookupUser("applicant", "applicantInfo")...)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []applicationViewDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}

	views := make([]domain.ApplicationView, 0, len(docs))
	for _, d := range docs {
		views = append(views, d.toDomain())
	}
	return views, nil
}

func (r *ApplicationRepository) DeleteByJob(ctx context.Context, jobID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"job": oid})
	if err != nil {
		return 0, fmt.Errorf("delete applications: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the unique (job, applicant) index and the listing index.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "job", Value: 1}, {Key: "applicant", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "appliedAt", Value: -1}}},
	}
	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("applications indexes: %w", err)
	}
	return nil
}
