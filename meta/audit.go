package meta

import "time"

// AuditInfo records who created and last modified an entity, and when.
// It is supplied by the layer performing the mutation; entity code only
// carries it.
type AuditInfo struct {
	Creator          string
	CreateTime       time.Time
	LastModifier     string
	LastModifiedTime time.Time
}
