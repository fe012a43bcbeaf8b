package user

import (
	"net/mail"
	"strings"
)

// Violation is one failed field constraint, reported back to the client.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const minAge = 14

// Validate checks the boundary constraints on an inbound view. An empty
// slice means the payload may be handed to the service.
func Validate(view UserView) []Violation {
	violations := make([]Violation, 0)

	if strings.TrimSpace(view.Name) == "" {
		violations = append(violations, Violation{Field: "name", Message: "name must not be blank"})
	}

	if _, err := mail.ParseAddress(view.Email); err != nil {
		violations = append(violations, Violation{Field: "email", Message: "invalid email format"})
	}

	if view.Age < minAge {
		violations = append(violations, Violation{Field: "age", Message: "minimum age is 14"})
	}

	return violations
}
