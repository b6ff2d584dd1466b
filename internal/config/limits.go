package config

const (
	// MaxDisplayNameLength is the maximum length for block display names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (names should be short and descriptive).
	MaxDisplayNameLength = 255

	// MaxCourseIDLength is the maximum length for course identifiers.
	// Course keys are opaque strings assigned by the platform; 255 covers
	// every key format observed in practice.
	MaxCourseIDLength = 255
)
