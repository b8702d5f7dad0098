package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/99minutos/course-api/internal/core/domain"
)

func TestUserDocument_RoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	in := &domain.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	doc := toUserDocument(in)
	if !doc.ID.IsZero() {
		t.Fatal("document id must be assigned by Create")
	}
	doc.ID = primitive.NewObjectID()

	out := doc.toDomain()
	if out.ID != doc.ID.Hex() || out.PasswordHash != in.PasswordHash || out.EmailAddress != in.EmailAddress {
		t.Fatalf("unexpected user: %+v", out)
	}
	if !out.CreatedAt.Equal(now) {
		t.Fatalf("expected %v, got %v", now, out.CreatedAt)
	}
}
