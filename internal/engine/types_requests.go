package engine

// AddRequest represents a request to add files to a session.
type AddRequest struct {
	// Session is the session name (empty selects the default session)
	Session string

	// CWD is the directory relative paths are resolved against
	CWD string

	// Args are paths or glob patterns
	Args []string

	// Glob enables glob expansion of Args
	Glob bool
}

// DropRequest represents a request to add files from a drag-and-drop payload.
type DropRequest struct {
	// Session is the session name (empty selects the default session)
	Session string

	// CWD is the directory relative paths are resolved against
	CWD string

	// Payload is the raw list string delivered by the drop source
	Payload string
}

// RemoveRequest represents a request to remove paths from a session.
type RemoveRequest struct {
	// Session is the session name (empty selects the default session)
	Session string

	// CWD is the directory relative paths are resolved against
	CWD string

	// Paths are the paths to remove
	Paths []string
}

// SaveRequest represents a request to export a session to XML.
type SaveRequest struct {
	// Session is the session name (empty selects the default session)
	Session string

	// CWD is the directory a relative Dest is resolved against
	CWD string

	// Dest is the output file; ".xml" is appended when it has no extension
	Dest string

	// MaxContentBytes overrides the configured content limit when positive
	MaxContentBytes int64

	// Atomic writes via temp file + rename
	Atomic bool
}

// OpenRequest represents a request to load a session from XML.
type OpenRequest struct {
	// Session is the session name (empty selects the default session)
	Session string

	// CWD is the directory a relative Source is resolved against
	CWD string

	// Source is the XML document to read
	Source string

	// Destructive clears the session before parsing
	Destructive bool
}
