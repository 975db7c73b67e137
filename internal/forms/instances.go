package forms

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nepalailab/labsite/internal/httpapi"
)

// Field names shared by the contact and join-request forms.
const (
	FieldFullName     = "full_name"
	FieldEmail        = "email"
	FieldSubject      = "subject"
	FieldMessage      = "message"
	FieldInterestArea = "interest_area"
)

// InterestAreas is the closed set of join-request interest areas the
// backend recognizes.
var InterestAreas = []string{"research", "development", "partnership"}

// NewContact creates the contact form posting to contact-messages/.
func NewContact(client *httpapi.Client, logger *zap.Logger) *Form {
	f := newForm(client, logger, "contact-messages/")
	f.required = []string{FieldFullName, FieldEmail, FieldSubject, FieldMessage}
	f.success = "Message sent successfully! We will get back to you soon."
	f.generic = "Failed to send message. Please try again."
	return f
}

// NewNewsletter creates the newsletter signup form posting to newsletter/.
func NewNewsletter(client *httpapi.Client, logger *zap.Logger) *Form {
	f := newForm(client, logger, "newsletter/")
	f.required = []string{FieldEmail}
	f.success = "Successfully Subscribed!"
	f.generic = "Already subscribed or invalid email."
	return f
}

// NewJoin creates the join-request form posting to join-requests/. The
// interest area must be one of InterestAreas.
func NewJoin(client *httpapi.Client, logger *zap.Logger) *Form {
	f := newForm(client, logger, "join-requests/")
	f.required = []string{FieldFullName, FieldEmail, FieldInterestArea, FieldMessage}
	f.success = "Application submitted! We will contact you soon."
	f.generic = "Something went wrong. Please try again."
	f.validate = func(fields map[string]string) string {
		area := fields[FieldInterestArea]
		for _, known := range InterestAreas {
			if area == known {
				return ""
			}
		}
		return fmt.Sprintf("interest_area must be one of: %s.", strings.Join(InterestAreas, ", "))
	}
	return f
}
