package models

import (
	"time"
)

// EditorMode selects the authoring interface for a block: rich-text
// (visual) or direct markup editing (raw).
type EditorMode string

const (
	EditorVisual EditorMode = "visual"
	EditorRaw    EditorMode = "raw"
)

// Block is one placed HTML content block. Data holds the author-submitted
// HTML exactly as received; it is never escaped, validated, or sanitized at
// write time. Sanitization happens on the read path, gated by
// AllowJavascript.
type Block struct {
	ID              string     `json:"id" db:"id"`
	CourseID        string     `json:"course_id" db:"course_id"`
	DisplayName     string     `json:"display_name" db:"display_name"`
	Data            string     `json:"data" db:"data"`
	Editor          EditorMode `json:"editor" db:"editor"`
	AllowJavascript bool       `json:"allow_javascript" db:"allow_javascript"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}
