package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/course-api/internal/core/domain"
	"github.com/99minutos/course-api/internal/core/ports"
)

const collectionCourses = "courses"

type CourseRepository struct {
	col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{col: db.Collection(collectionCourses)}
}

// courseDocument stores the owner as an ObjectID reference under "user".
type courseDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	EstimatedTime   string             `bson:"estimatedTime,omitempty"`
	MaterialsNeeded string             `bson:"materialsNeeded,omitempty"`
	User            primitive.ObjectID `bson:"user"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

func (d courseDocument) toDomain() *domain.Course {
	c := &domain.Course{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Description:     d.Description,
		EstimatedTime:   d.EstimatedTime,
		MaterialsNeeded: d.MaterialsNeeded,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
	if !d.User.IsZero() {
		c.OwnerID = d.User.Hex()
	}
	return c
}

func toCourseDocument(c *domain.Course) (courseDocument, error) {
	owner, ok := parseID(c.OwnerID)
	if !ok {
		return courseDocument{}, fmt.Errorf("course owner %q is not an object id", c.OwnerID)
	}
	return courseDocument{
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		User:            owner,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}, nil
}

// List returns every course, most recently updated first.
func (r *CourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find courses: %w", err)
	}
	defer cur.Close(ctx)

	var docs []courseDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}

	out := make([]*domain.Course, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

// FindByID retrieves a course. Unknown and malformed ids both yield
// domain.ErrCourseNotFound.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc courseDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return doc.toDomain(), nil
}

// Create inserts a new course and sets c.ID.
func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	doc, err := toCourseDocument(c)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	c.ID = doc.ID.Hex()
	return nil
}

// Update overwrites the mutable fields. Optional fields sent empty are
// cleared.
func (r *CourseRepository) Update(ctx context.Context, id string, changes ports.CourseChanges) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, courseUpdate(changes))
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// Delete removes a course.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by List and owner lookups.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "updatedAt", Value: -1}}},
		{Keys: bson.D{{Key: "user", Value: 1}}},
	}
	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("courses indexes: %w", err)
	}
	return nil
}

func courseUpdate(ch ports.CourseChanges) bson.M {
	set := bson.M{
		"title":       ch.Title,
		"description": ch.Description,
		"updatedAt":   ch.UpdatedAt,
	}
	unset := bson.M{}
	for field, v := range map[string]string{
		"estimatedTime":   ch.EstimatedTime,
		"materialsNeeded": ch.MaterialsNeeded,
	} {
		if v == "" {
			unset[field] = ""
		} else {
			set[field] = v
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}
