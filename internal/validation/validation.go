package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError describes one field that failed a rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of a validation pass. An empty Errors slice means success.
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

// OK reports whether no rule failed.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Messages maps field names to their messages.
func (r Result) Messages() map[string]string {
	out := make(map[string]string, len(r.Errors))
	for _, fe := range r.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

// Error joins all field messages.
func (r Result) Error() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, fe := range r.Errors {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validator checks structs against their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the notblank rule registered and form tag names
// used for reported fields. It panics if a rule cannot be registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("validation: register notblank: %v", err))
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Check runs every rule on s and collects the failures.
func (v *Validator) Check(s interface{}) Result {
	err := v.validate.Struct(s)
	if err == nil {
		return Result{}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Errors: []FieldError{{Message: err.Error()}}}
	}

	res := Result{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return res
}

func message(fe validator.FieldError) string {
	label := Label(fe.StructField())
	switch fe.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("The %s field must not be blank.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}

// Label turns a Go field name such as "FirstName" into "First Name".
func Label(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
