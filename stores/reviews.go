package stores

import (
	"context"
	"time"

	"github.com/Govind-619/BookNook/models"
	"github.com/Govind-619/BookNook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultReviewOpTimeout = 5 * time.Second

// ReviewStoreOptions configures the review store. A nil Client leaves the
// store unavailable; every operation then fails with StoreUnavailable.
type ReviewStoreOptions struct {
	Client     *mongo.Client
	Database   string
	Collection string
	Timeout    time.Duration
}

// ReviewStore reads and writes reviews in the document store through a
// collection handle established once at startup
type ReviewStore struct {
	reviews collection
	timeout time.Duration
	now     func() time.Time
}

// NewReviewStore returns a ReviewStore bound to the configured collection
func NewReviewStore(opts ReviewStoreOptions) *ReviewStore {
	var coll collection
	if opts.Client != nil {
		coll = mongoCollection{coll: opts.Client.Database(opts.Database).Collection(opts.Collection)}
	}
	return newReviewStoreWithCollection(coll, opts.Timeout)
}

func newReviewStoreWithCollection(coll collection, timeout time.Duration) *ReviewStore {
	if timeout <= 0 {
		timeout = defaultReviewOpTimeout
	}
	return &ReviewStore{
		reviews: coll,
		timeout: timeout,
		now:     time.Now,
	}
}

// Available reports whether the review collection handle exists
func (s *ReviewStore) Available() bool {
	return s != nil && s.reviews != nil
}

// ListReviews returns reviews newest first, restricted to bookID when it
// is not empty
func (s *ReviewStore) ListReviews(ctx context.Context, bookID string) ([]models.ReviewResponse, error) {
	if !s.Available() {
		return nil, utils.StoreUnavailableError()
	}

	filter := bson.M{}
	if bookID != "" {
		filter["book_id"] = bookID
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cur, err := s.reviews.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, utils.InternalError(utils.ErrFetchReviews, err)
	}
	defer func() {
		_ = cur.Close(ctx)
	}()

	reviews := []models.ReviewResponse{}
	for cur.Next(ctx) {
		var doc models.ReviewDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, utils.InternalError(utils.ErrFetchReviews, err)
		}
		reviews = append(reviews, doc.ToResponse())
	}
	if err := cur.Err(); err != nil {
		return nil, utils.InternalError(utils.ErrFetchReviews, err)
	}
	return reviews, nil
}

// AddReview normalizes input, stores it and returns the new review id
func (s *ReviewStore) AddReview(ctx context.Context, input models.ReviewInput) (string, error) {
	if !s.Available() {
		return "", utils.StoreUnavailableError()
	}

	bookID := utils.StringifyValue(input.BookID)
	if bookID == "" || input.ReviewText == "" {
		return "", utils.BadRequestError(utils.ErrReviewFieldsRequired, nil)
	}

	createdAt := s.now().UTC()
	doc := models.ReviewDocument{
		BookID:     bookID,
		Reviewer:   input.Reviewer,
		ReviewText: input.ReviewText,
		Rating:     utils.ParseRating(input.Rating),
		CreatedAt:  &createdAt,
	}
	if doc.Reviewer == "" {
		doc.Reviewer = models.DefaultReviewer
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.reviews.InsertOne(ctx, doc)
	if err != nil {
		utils.LogError("Error inserting review: %v", err)
		return "", utils.InternalError(utils.ErrAddReview, err)
	}
	return models.StringifyID(res.InsertedID), nil
}

type collection interface {
	Find(ctx context.Context, filter any, opts ...*options.FindOptions) (cursor, error)
	InsertOne(ctx context.Context, document any, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type cursor interface {
	Close(ctx context.Context) error
	Decode(val any) error
	Err() error
	Next(ctx context.Context) bool
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c mongoCollection) Find(ctx context.Context, filter any, opts ...*options.FindOptions) (cursor, error) {
	cur, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return cur, nil
}

func (c mongoCollection) InsertOne(ctx context.Context, document any,
	opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	return c.coll.InsertOne(ctx, document, opts...)
}
