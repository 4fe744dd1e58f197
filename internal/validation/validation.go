// Package validation holds the single rule table for the submission form.
// Both the client package and the server's strict mode consume it, so the
// rules are written once as pure functions from raw value to error message.
// An empty message means the value is valid.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxResumeBytes caps résumé uploads at 2 MiB.
	MaxResumeBytes = 2 << 20
	// MaxAboutLen caps the free-text field at 500 characters.
	MaxAboutLen = 500
)

var (
	GenderOptions = []string{"Male", "Female", "Other"}
	SelectOptions = []string{"option1", "option2", "option3"}
	SubjectNames  = []string{"English", "Maths", "Physics"}
)

// AllowedResumeTypes are the media types a résumé may carry: PDF, DOC, DOCX.
var AllowedResumeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// emailPattern is the basic local@domain.tld check: no whitespace, one @,
// at least one dot after it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = validator.New()

// FileMeta is the client-reported metadata for a chosen résumé file.
// Size or MimeType may be absent (zero); checks that depend on them only
// run when the value is present, so missing metadata never falsely blocks.
type FileMeta struct {
	Name     string
	Size     int64
	MimeType string
}

// Values mirrors the submission shape before validation.
type Values struct {
	FirstName string
	LastName  string
	Email     string
	Contact   string
	Gender    string
	Subjects  map[string]bool
	Resume    *FileMeta
	URL       string
	Select    string
	About     string
}

// FieldNames lists every validated field in form order. Subjects checkboxes
// carry no rule and are deliberately absent.
var FieldNames = []string{
	"firstName", "lastName", "email", "contact", "gender",
	"resume", "url", "select", "about",
}

// Name validates firstName/lastName: required, trimmed length >= 2.
func Name(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "This field is required."
	}
	if len(trimmed) < 2 {
		return "Must be at least 2 characters."
	}
	return ""
}

// Email validates the email field against the local@domain.tld pattern.
func Email(value string) string {
	if value == "" {
		return "Email is required."
	}
	if !emailPattern.MatchString(value) {
		return "Enter a valid email address."
	}
	return ""
}

// StripNonDigits normalizes a contact number down to its decimal digits.
func StripNonDigits(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}

// Contact validates the phone number: required, 7-15 digits after
// stripping everything that is not a digit. Stripping happens before the
// length check, so "(555) 123-4567" counts as 10 digits.
func Contact(value string) string {
	if value == "" {
		return "Number is required."
	}
	digits := StripNonDigits(value)
	if len(digits) < 7 || len(digits) > 15 {
		return "Enter a valid phone number (7-15 digits)."
	}
	return ""
}

// Gender validates the gender radio selection.
func Gender(value string) string {
	if !oneOf(value, GenderOptions) {
		return "Select a gender."
	}
	return ""
}

// Resume validates the chosen file. Size and type checks only apply when
// the client reported those values.
func Resume(meta *FileMeta) string {
	if meta == nil {
		return "Resume is required."
	}
	if meta.Size > MaxResumeBytes {
		return "File must be smaller than 2MB."
	}
	if meta.MimeType != "" && !oneOf(meta.MimeType, AllowedResumeTypes) {
		return "Allowed file types: PDF, DOC, DOCX."
	}
	return ""
}

// URL validates that the value parses as an absolute URL with a scheme.
func URL(value string) string {
	if value == "" {
		return "URL is required."
	}
	if err := validate.Var(value, "url"); err != nil {
		return "Enter a valid URL (include http:// or https://)."
	}
	return ""
}

// Select validates the multiple-choice answer.
func Select(value string) string {
	if !oneOf(value, SelectOptions) {
		return "Please select an option."
	}
	return ""
}

// About validates the free text: optional, at most 500 characters.
func About(value string) string {
	if len(value) > MaxAboutLen {
		return "About must be 500 characters or less."
	}
	return ""
}

// Field dispatches a single field's rule by name. The resume value must be
// a *FileMeta (or nil); every other field is a string.
func Field(name string, value interface{}) string {
	switch name {
	case "firstName", "lastName":
		return Name(asString(value))
	case "email":
		return Email(asString(value))
	case "contact":
		return Contact(asString(value))
	case "gender":
		return Gender(asString(value))
	case "resume":
		meta, _ := value.(*FileMeta)
		return Resume(meta)
	case "url":
		return URL(asString(value))
	case "select":
		return Select(asString(value))
	case "about":
		return About(asString(value))
	default:
		return ""
	}
}

// All runs every field's rule and reports per-field messages. The form
// passes the whole-form gate iff every message is empty.
func All(v Values) (map[string]string, bool) {
	errs := make(map[string]string, len(FieldNames))
	ok := true
	for _, name := range FieldNames {
		var msg string
		if name == "resume" {
			msg = Field(name, v.Resume)
		} else {
			msg = Field(name, fieldValue(v, name))
		}
		errs[name] = msg
		if msg != "" {
			ok = false
		}
	}
	return errs, ok
}

func fieldValue(v Values, name string) string {
	switch name {
	case "firstName":
		return v.FirstName
	case "lastName":
		return v.LastName
	case "email":
		return v.Email
	case "contact":
		return v.Contact
	case "gender":
		return v.Gender
	case "url":
		return v.URL
	case "select":
		return v.Select
	case "about":
		return v.About
	default:
		return ""
	}
}

func asString(value interface{}) string {
	s, ok := value.(string)
	if !ok && value != nil {
		return fmt.Sprint(value)
	}
	return s
}

func oneOf(value string, options []string) bool {
	for _, opt := range options {
		if value == opt {
			return true
		}
	}
	return false
}
