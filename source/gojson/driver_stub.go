//go:build !gojson

package gojson

import (
	"io"

	schemanode "github.com/reoring/schemanode"
	jsonsrc "github.com/reoring/schemanode/source/json"
)

// Driver returns a stub driver when the gojson tag is not enabled.
// It delegates to the encoding/json-based source directly to avoid recursion.
func Driver() schemanode.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) schemanode.Source {
	return schemanode.SourceFromEngine(jsonsrc.NewReader(r))
}
func (stub) NewBytes(b []byte) schemanode.Source {
	return schemanode.SourceFromEngine(jsonsrc.NewBytes(b))
}
func (stub) Name() string { return "encoding/json (gojson stub)" }
