package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Submission is one persisted form entry. ID and CreatedAt are assigned by
// the store at persistence time, never by the caller.
type Submission struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Contact   string     `json:"contact"`
	Gender    string     `json:"gender"`
	Subjects  SubjectSet `gorm:"type:jsonb" json:"subjects"`
	Resume    *FileRef   `gorm:"type:jsonb" json:"resume"`
	URL       string     `json:"url"`
	// "select" is reserved in SQL, so the column gets a safe name while the
	// JSON key stays what the form sends.
	Select string `gorm:"column:selected_option" json:"select"`
	About  string `gorm:"type:text" json:"about"`
}

// SubjectSet maps subject name to whether it was checked. Stored as JSONB.
type SubjectSet map[string]bool

func (s SubjectSet) Value() (driver.Value, error) {
	if s == nil {
		s = SubjectSet{}
	}
	return json.Marshal(s)
}

func (s *SubjectSet) Scan(value interface{}) error {
	if value == nil {
		*s = SubjectSet{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into SubjectSet", value)
	}
}

// FileRef describes an uploaded résumé without embedding its bytes in the
// record. Either the whole reference is present or the field is null.
type FileRef struct {
	Path         string `json:"path"`
	OriginalName string `json:"originalname"`
	MimeType     string `json:"mimetype"`
	Size         int64  `json:"size"`
}

func (f *FileRef) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

func (f *FileRef) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("cannot scan %T into FileRef", value)
	}
}
