// Package entities extracts named entities from post messages through an
// opaque external collaborator.
package entities

import "context"

// EntityMap holds one nullable value per configured entity type.
type EntityMap map[string]*string

// Extractor turns a raw message into its entity map. Implementations are
// interchangeable; the pipeline only sees this interface.
type Extractor interface {
	Extract(ctx context.Context, message string) (EntityMap, error)
}
