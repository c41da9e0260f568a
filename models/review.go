package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultReviewer is stored when a review is submitted without a name
const DefaultReviewer = "Anonymous"

// ReviewDocument is the shape of a review in the document store
type ReviewDocument struct {
	ID         any        `bson:"_id,omitempty"`
	BookID     any        `bson:"book_id"`
	Reviewer   string     `bson:"reviewer"`
	ReviewText string     `bson:"review_text"`
	Rating     int        `bson:"rating"`
	CreatedAt  *time.Time `bson:"created_at,omitempty"`
}

// ReviewResponse is a review as returned by the API. BookID is passed
// through as stored, documents written by other clients may hold numbers.
type ReviewResponse struct {
	ID         string  `json:"id"`
	BookID     any     `json:"book_id"`
	Reviewer   string  `json:"reviewer"`
	ReviewText string  `json:"review_text"`
	Rating     int     `json:"rating"`
	CreatedAt  *string `json:"created_at"`
}

// ReviewInput holds the raw add review payload. BookID and Rating are
// loosely typed because clients send both numbers and strings.
type ReviewInput struct {
	BookID     any    `json:"book_id"`
	Reviewer   string `json:"reviewer"`
	ReviewText string `json:"review_text"`
	Rating     any    `json:"rating"`
}

// ToResponse maps a stored document to its API form
func (d ReviewDocument) ToResponse() ReviewResponse {
	resp := ReviewResponse{
		ID:         StringifyID(d.ID),
		BookID:     d.BookID,
		Reviewer:   d.Reviewer,
		ReviewText: d.ReviewText,
		Rating:     d.Rating,
	}
	if d.CreatedAt != nil && !d.CreatedAt.IsZero() {
		ts := d.CreatedAt.UTC().Format(time.RFC3339Nano)
		resp.CreatedAt = &ts
	}
	return resp
}

// StringifyID renders a document identifier the way clients expect it
func StringifyID(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
