package context

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// subjectKey is the metadata key the authenticated caller is stored under.
const (
	subjectKey string = "x-mermory-subject"
)

// Manager stores the authenticated caller in gRPC incoming metadata.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSubjectToContext returns a context whose incoming metadata carries
// subject. Existing metadata is preserved.
func (m *Manager) SetSubjectToContext(ctx context.Context, subject string) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(map[string]string{subjectKey: subject})
	} else {
		md = md.Copy()
		md.Set(subjectKey, subject)
	}

	return metadata.NewIncomingContext(ctx, md)
}

// GetSubjectFromContext returns the subject set by SetSubjectToContext.
func (m *Manager) GetSubjectFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}

	subjects := md.Get(subjectKey)
	if len(subjects) == 0 || subjects[0] == "" {
		return "", false
	}

	return subjects[0], true
}
