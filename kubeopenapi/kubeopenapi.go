package kubeopenapi

import (
	"errors"
	"strconv"

	"github.com/reoring/schemanode"
)

// ErrNoSchema is returned when a document carries no openAPIV3Schema.
var ErrNoSchema = errors.New("kubeopenapi: no openAPIV3Schema found")

// Import constructs the schema tree of a Kubernetes OpenAPI v3 schema. The
// input may be the schema itself, an object wrapping it under
// openAPIV3Schema, or a whole CustomResourceDefinition. x-kubernetes-* keys
// and nullable land in the extension bag unless Options.Unknown drops them.
func Import(doc schemanode.Value, opts Options) (*schemanode.SchemaOrBool, Diag, error) {
	d := &simpleDiag{}
	if doc.Kind != schemanode.KindObject {
		return nil, d, ErrNoSchema
	}
	root, ok := unwrap(doc, opts, d)
	if !ok {
		return nil, d, ErrNoSchema
	}
	s, err := schemanode.FromValue(root, opts.parseOpt())
	if err != nil {
		return nil, d, err
	}
	warnNonObjectRoot(s, d)
	return s, d, nil
}

func unwrap(doc schemanode.Value, opts Options, d *simpleDiag) (schemanode.Value, bool) {
	if oas, ok := doc.Get("openAPIV3Schema"); ok {
		d.ptr = "/openAPIV3Schema"
		return oas, true
	}
	if kind, ok := doc.Get("kind"); !ok || kind.String != "CustomResourceDefinition" {
		// Treat the document as a bare schema.
		return doc, true
	}
	spec, _ := doc.Get("spec")
	if vers, ok := spec.Get("versions"); ok && vers.Kind == schemanode.KindArray {
		if oas, ptr, ok := pickVersion(vers, opts, d); ok {
			d.ptr = ptr
			return oas, true
		}
	}
	// apiextensions.k8s.io/v1beta1
	if val, ok := spec.Get("validation"); ok {
		if oas, ok := val.Get("openAPIV3Schema"); ok {
			d.warnf("using legacy spec.validation schema")
			d.ptr = "/spec/validation/openAPIV3Schema"
			return oas, true
		}
	}
	return schemanode.Value{}, false
}

func pickVersion(vers schemanode.Value, opts Options, d *simpleDiag) (schemanode.Value, string, bool) {
	var (
		fallback    schemanode.Value
		fallbackPtr string
		found       bool
	)
	for i, v := range vers.Array {
		sch, _ := v.Get("schema")
		oas, ok := sch.Get("openAPIV3Schema")
		if !ok {
			continue
		}
		ptr := "/spec/versions/" + strconv.Itoa(i) + "/schema/openAPIV3Schema"
		name, _ := v.Get("name")
		served := true
		if sv, ok := v.Get("served"); ok && sv.Kind == schemanode.KindBool {
			served = sv.Bool
		}
		if opts.Version != "" {
			if name.String != opts.Version {
				continue
			}
			if !served {
				d.warnf("version %q is not served", opts.Version)
			}
			return oas, ptr, true
		}
		if served {
			return oas, ptr, true
		}
		if !found {
			fallback, fallbackPtr, found = oas, ptr, true
		}
	}
	if opts.Version != "" {
		d.warnf("version %q not found", opts.Version)
		return schemanode.Value{}, "", false
	}
	if found {
		d.warnf("no served version; using first version with a schema")
	}
	return fallback, fallbackPtr, found
}

// warnNonObjectRoot warns when the root declares a non-object type.
func warnNonObjectRoot(s *schemanode.SchemaOrBool, d *simpleDiag) {
	sch := s.Schema()
	if sch == nil || sch.Type == nil {
		return
	}
	if !sch.Type.Has(schemanode.TypeObject) {
		d.warnf("non-object schema at root: type=%v", sch.Type.Names())
	}
}
