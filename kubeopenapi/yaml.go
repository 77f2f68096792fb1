package kubeopenapi

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/reoring/schemanode"
)

// ImportYAMLForCRDKind scans a multi-document YAML (e.g., CRD bundle) and imports
// the first CustomResourceDefinition matching the given spec.names.kind.
// If no matching CRD is found, returns an error.
func ImportYAMLForCRDKind(ctx context.Context, data []byte, kind string, opts Options) (*schemanode.SchemaOrBool, Diag, error) {
	return importFirst(ctx, data, opts, func(doc schemanode.Value) bool {
		spec, _ := doc.Get("spec")
		names, _ := spec.Get("names")
		k, _ := names.Get("kind")
		return k.Kind == schemanode.KindString && k.String == kind
	}, errors.New("kubeopenapi: CRD kind not found in YAML bundle"))
}

// ImportYAMLForCRDName scans a multi-document YAML and imports the CRD
// with given metadata.name.
func ImportYAMLForCRDName(ctx context.Context, data []byte, name string, opts Options) (*schemanode.SchemaOrBool, Diag, error) {
	return importFirst(ctx, data, opts, func(doc schemanode.Value) bool {
		meta, _ := doc.Get("metadata")
		n, _ := meta.Get("name")
		return n.Kind == schemanode.KindString && n.String == name
	}, errors.New("kubeopenapi: CRD name not found in YAML bundle"))
}

func importFirst(ctx context.Context, data []byte, opts Options, match func(schemanode.Value) bool, notFound error) (*schemanode.SchemaOrBool, Diag, error) {
	r := NewStrictYAMLReader(bytes.NewReader(data))
	for {
		doc, err := r.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &simpleDiag{}, err
		}
		if k, _ := doc.Get("kind"); k.String != "CustomResourceDefinition" {
			continue
		}
		if match(doc) {
			return Import(doc, opts)
		}
	}
	return nil, &simpleDiag{}, notFound
}
