package session

import "time"

// SchemaVersion is the current version of the session file format.
const SchemaVersion = 1

// SessionState is the persisted form of a working file set.
type SessionState struct {
	// SchemaVersion is the version of this schema
	SchemaVersion int `json:"schemaVersion"`

	// Name is the session name (also the file name without extension)
	Name string `json:"name"`

	// Paths is the ordered list of unique file paths
	Paths []string `json:"paths"`

	// LastDocument is the XML document most recently saved or opened
	LastDocument string `json:"lastDocument,omitempty"`

	// CreatedAt is when the session was first saved
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the session was last saved
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSessionState creates a new empty SessionState.
func NewSessionState(name string, createdAt time.Time) *SessionState {
	return &SessionState{
		SchemaVersion: SchemaVersion,
		Name:          name,
		Paths:         []string{},
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}
