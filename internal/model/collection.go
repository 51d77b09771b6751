package model

import "context"

// Collection is a remote document collection holding person documents.
// Every backend addresses documents by an opaque string identity.
type Collection interface {
	// Insert adds a new document and returns its identity.
	Insert(ctx context.Context, person Person) (string, error)
	// FindEqual returns documents whose three fields all equal the given person.
	FindEqual(ctx context.Context, person Person) ([]Document, error)
	// Merge overwrites only the fields set in fields.
	Merge(ctx context.Context, id string, fields Fields) error
	// Delete removes the document.
	Delete(ctx context.Context, id string) error
	// All scans the whole collection.
	All(ctx context.Context) ([]Document, error)
}

// Document is a stored person together with its opaque identity.
type Document struct {
	ID     string
	Person Person
}

// RecordFailure describes a per-document mutation failure.
type RecordFailure struct {
	DocumentID string
	Message    string
}

// MutationResult reports the outcome of an update or delete over all matches.
type MutationResult struct {
	Matched   int
	Succeeded []string
	Failures  []RecordFailure
}

// NoDataMessage is the notification shown when nothing matched.
const NoDataMessage = "No Data"

// NoData reports whether the criteria matched zero documents.
func (r MutationResult) NoData() bool {
	return r.Matched == 0
}

// Notifications returns one message per failed record, or NoDataMessage
// when nothing matched.
func (r MutationResult) Notifications() []string {
	if r.NoData() {
		return []string{NoDataMessage}
	}
	out := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		out = append(out, f.Message)
	}
	return out
}
