package engine

// AddResult represents the result of an add or drop operation.
type AddResult struct {
	// Session is the session name
	Session string `json:"session"`

	// Candidates are the resolved paths offered to the set
	Candidates []string `json:"candidates"`

	// Added is the number of paths that were not already present
	Added int `json:"added"`

	// Total is the size of the set afterwards
	Total int `json:"total"`

	// Unmatched lists glob patterns that matched nothing
	Unmatched []string `json:"unmatched,omitempty"`
}

// RemoveResult represents the result of a remove operation.
type RemoveResult struct {
	// Session is the session name
	Session string `json:"session"`

	// Removed is the number of paths removed
	Removed int `json:"removed"`

	// NotFound lists requested paths that were not in the set
	NotFound []string `json:"notFound,omitempty"`

	// Total is the size of the set afterwards
	Total int `json:"total"`
}

// ClearResult represents the result of a clear operation.
type ClearResult struct {
	// Session is the session name
	Session string `json:"session"`

	// Cleared is the number of paths that were removed
	Cleared int `json:"cleared"`
}

// SaveResult represents the result of exporting a session.
type SaveResult struct {
	// Session is the session name
	Session string `json:"session"`

	// Path is the absolute path of the written document
	Path string `json:"path"`

	// Documents is the number of <document> entries written
	Documents int `json:"documents"`

	// WithContent is the number of entries carrying file text
	WithContent int `json:"withContent"`
}

// OpenResult represents the result of loading a session from XML.
type OpenResult struct {
	// Session is the session name
	Session string `json:"session"`

	// Path is the absolute path of the document read
	Path string `json:"path"`

	// Loaded is the number of distinct paths now in the session
	Loaded int `json:"loaded"`
}

// ListResult represents the contents of a session.
type ListResult struct {
	// Session is the session name
	Session string `json:"session"`

	// LastDocument is the XML most recently saved or opened
	LastDocument string `json:"lastDocument,omitempty"`

	// Entries describe each path in insertion order
	Entries []Inspection `json:"entries"`
}
