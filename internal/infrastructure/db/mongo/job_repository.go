package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobportal/portal-api/internal/core/domain"
	"github.com/jobportal/portal-api/internal/core/ports"
)

const collectionJobs = "jobs"

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

type jobDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Location    string             `bson:"location,omitempty"`
	Salary      float64            `bson:"salary,omitempty"`
	PostedBy    primitive.ObjectID `bson:"postedBy"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// jobListingDoc is a job after the poster $lookup.
type jobListingDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Location    string             `bson:"location"`
	Salary      float64            `bson:"salary"`
	Poster      *userSummaryDoc    `bson:"poster,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d jobDoc) toDomain() *domain.Job {
	return &domain.Job{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		Salary:      d.Salary,
		PostedBy:    d.PostedBy.Hex(),
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

func (d jobListingDoc) toDomain() domain.JobListing {
	return domain.JobListing{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Location:    d.Location,
		Salary:      d.Salary,
		PostedBy:    d.Poster.toDomain(),
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

// Create inserts job and sets its ID.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	postedBy, err := primitive.ObjectIDFromHex(job.PostedBy)
	if err != nil {
		return fmt.Errorf("%w: invalid poster id", domain.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := jobDoc{
		ID:          primitive.NewObjectID(),
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		Salary:      job.Salary,
		PostedBy:    postedBy,
		CreatedAt:   job.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	job.ID = doc.ID.Hex()
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns jobs newest first with the poster's name and email resolved.
func (r *JobRepository) List(ctx context.Context, f ports.JobFilter) ([]domain.JobListing, error) {
	match := bson.M{}
	if f.PostedBy != "" {
		oid, err := primitive.ObjectIDFromHex(f.PostedBy)
		if err != nil {
			return []domain.JobListing{}, nil
		}
		match["postedBy"] = oid
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, lookupUser("postedBy", "poster")...)

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []jobListingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}

	jobs := make([]domain.JobListing, 0, len(docs))
	for _, d := range docs {
		jobs = append(jobs, d.toDomain())
	}
	return jobs, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by the listing queries.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "postedBy", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("jobs indexes: %w", err)
	}
	return nil
}

// lookupUser resolves the user referenced by localField into as, keeping
// only _id, name and email. Documents whose user is gone keep a nil as.
func lookupUser(localField, as string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionUsers},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "_id", Value: 1},
					{Key: "name", Value: 1},
					{Key: "email", Value: 1},
				}}},
			}},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + as},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}
