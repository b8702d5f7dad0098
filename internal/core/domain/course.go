package domain

import "time"

// Course is the owned resource of the catalog. OwnerID is set once at
// creation from the authenticated user and never changes afterwards.
type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   string    `json:"estimatedTime,omitempty"`
	MaterialsNeeded string    `json:"materialsNeeded,omitempty"`
	OwnerID         string    `json:"user"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the course belongs to the user with the given id.
func (c *Course) OwnedBy(userID string) bool {
	return c.OwnerID != "" && c.OwnerID == userID
}

// AuthorizeOwner permits a mutation of c by principal only when principal is
// the recorded owner. The returned error carries the principal's email and
// nothing about the actual owner.
func AuthorizeOwner(principal *User, c *Course, action string) error {
	if principal == nil {
		return ErrInvalidCredentials
	}
	if c.OwnedBy(principal.ID) {
		return nil
	}
	return &ForbiddenError{
		Message:     "You can only " + action + " your own courses.",
		CurrentUser: principal.EmailAddress,
	}
}
