package kubeopenapi

import (
	"fmt"

	"github.com/reoring/schemanode"
)

// Options controls how a Kubernetes OpenAPI v3 schema is imported.
type Options struct {
	// Version selects spec.versions[].name. Empty picks the first served
	// version, falling back to the first version carrying a schema.
	Version string
	// Unknown decides whether non-vocabulary keys (x-kubernetes-*, nullable,
	// ...) are kept in the extension bag. Retained by default.
	Unknown      schemanode.UnknownPolicy
	FailFast     bool
	StrictBounds bool
}

func (o Options) parseOpt() schemanode.ParseOpt {
	return schemanode.ParseOpt{Unknown: o.Unknown, FailFast: o.FailFast, StrictBounds: o.StrictBounds}
}

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
	// SchemaPointer locates the imported schema inside the source document.
	// Issue paths returned by Import are relative to it.
	SchemaPointer() string
}

type simpleDiag struct {
	ws  []string
	ptr string
}

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) SchemaPointer() string    { return d.ptr }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
