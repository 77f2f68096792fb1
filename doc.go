// Package schemanode provides the in-memory data model for JSON Schema
// documents (draft-04 through draft-07 plus the common editor extensions):
//
// - SchemaOrBool, the uniform "boolean or structured schema" node used for
//   the root and for every sub-schema slot
// - Schema, one optional field per recognized keyword, with an ordered
//   extension bag for everything else
// - Construction from JSON/YAML text or decoded values, reporting malformed
//   keywords through Issues (JSON Pointer, code, message)
// - Traversal (Children, Walk), a reference index (BuildIndex) and deep Clone
// - Serialization that keeps keyword order and number literals
//
// Design policy:
// - $ref values are stored verbatim and never followed; resolution belongs
//   to a separate resolver working on the Index.
// - Keep only public APIs in the root package; put token enforcement under
//   internal/, JSON drivers under source/, and the CLI under cmd/schemanode.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	root, err := schemanode.ParseBytes(ctx, data)
//	if errors.Is(err, schemanode.ErrMalformedKeyword) {
//		iss, _ := schemanode.AsIssues(err)
//		...
//	}
//	_ = schemanode.Walk(root, func(p schemanode.PathRef, n *schemanode.SchemaOrBool) error {
//		fmt.Println(p.Pointer(), n.Variant())
//		return nil
//	})
//	out, err := root.MarshalJSON()
package schemanode
