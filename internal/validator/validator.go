package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"udaan-cms/internal/domain"
)

var (
	slugRegex   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validStatus = []interface{}{domain.StatusDraft, domain.StatusPublished}
)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePost validates a Post before it is written. The slug must
// already be resolved (defaulted from the id) by the caller.
func (v *Validator) ValidatePost(p *domain.Post) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.ID,
			validation.Required.Error("id_required"),
		),
		validation.Field(&p.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&p.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&p.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
	)
}

// ValidateCredentials checks the login request fields.
func (v *Validator) ValidateCredentials(username, password string) error {
	return validation.Errors{
		"username": validation.Validate(username, validation.Required.Error("username_required")),
		"password": validation.Validate(password, validation.Required.Error("password_required")),
	}.Filter()
}
