package contact

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete is returned when a required field is empty.
	ErrIncomplete = errors.New("contact: all fields are required")
	// ErrUnknownField is returned by Update for a field name it does not know.
	ErrUnknownField = errors.New("contact: unknown field")
	// ErrClosed is returned after the controller has been closed.
	ErrClosed = errors.New("contact: controller closed")
	// ErrStale is returned by UpdateAt for an edit made to a form that has
	// since been submitted.
	ErrStale = errors.New("contact: form was submitted since this edit")
)

// Field names one input of the form, matching the HTML input names.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// ParseField maps an input name to its Field.
func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case FieldName, FieldEmail, FieldMessage:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Form holds the three text inputs. Binding tags mirror the inputs'
// required attribute.
type Form struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required"`
	Message string `form:"message" json:"message" binding:"required"`
}

// Validate reports ErrIncomplete when any field is empty. Whitespace is
// accepted, as the browser's required check accepts it.
func (f Form) Validate() error {
	var missing []Field
	if f.Name == "" {
		missing = append(missing, FieldName)
	}
	if f.Email == "" {
		missing = append(missing, FieldEmail)
	}
	if f.Message == "" {
		missing = append(missing, FieldMessage)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %v", ErrIncomplete, missing)
	}
	return nil
}

// Empty reports whether every field is blank.
func (f Form) Empty() bool {
	return f == Form{}
}

func (f *Form) set(field Field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	}
}
