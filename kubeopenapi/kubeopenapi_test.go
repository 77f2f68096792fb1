package kubeopenapi_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/reoring/schemanode"
	"github.com/reoring/schemanode/kubeopenapi"
)

func readBundle(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile("testdata/bundle.yaml")
	if err != nil {
		t.Fatalf("read bundle: %v", err)
	}
	return b
}

func TestImportYAMLForCRDKind_Widget(t *testing.T) {
	s, diag, err := kubeopenapi.ImportYAMLForCRDKind(context.Background(), readBundle(t), "Widget", kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if diag.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", diag.Warnings())
	}
	if got := diag.SchemaPointer(); got != "/spec/versions/1/schema/openAPIV3Schema" {
		t.Fatalf("schema pointer = %q", got)
	}
	root := s.Schema()
	if root == nil || len(root.Required) != 1 || root.Required[0] != "spec" {
		t.Fatalf("root required not imported: %+v", root)
	}
	spec, ok := root.Properties.Get("spec")
	if !ok {
		t.Fatalf("spec property missing")
	}
	if got := spec.Schema().Properties.Keys(); len(got) != 6 || got[0] != "name" || got[5] != "ports" {
		t.Fatalf("property order not kept: %v", got)
	}
	replicas, _ := spec.Schema().Properties.Get("replicas")
	if m := replicas.Schema().Maximum; m == nil || *m != "10" {
		t.Fatalf("maximum = %v", m)
	}
}

func TestImportYAMLForCRDKind_KubernetesExtensionsRetained(t *testing.T) {
	s, _, err := kubeopenapi.ImportYAMLForCRDKind(context.Background(), readBundle(t), "Widget", kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	spec, _ := s.Schema().Properties.Get("spec")
	ports, _ := spec.Schema().Properties.Get("ports")
	lt, ok := ports.Schema().Extra.Get("x-kubernetes-list-type")
	if !ok || lt.String != "map" {
		t.Fatalf("x-kubernetes-list-type not retained: %+v", ports.Schema().Extra)
	}
	note, _ := spec.Schema().Properties.Get("note")
	if n, ok := note.Schema().Extra.Get("nullable"); !ok || !n.Bool {
		t.Fatalf("nullable not retained")
	}
}

func TestImportYAMLForCRDKind_DropUnknown(t *testing.T) {
	opts := kubeopenapi.Options{Unknown: schemanode.UnknownDrop}
	s, _, err := kubeopenapi.ImportYAMLForCRDKind(context.Background(), readBundle(t), "Widget", opts)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	err = schemanode.Walk(s, func(path schemanode.PathRef, node *schemanode.SchemaOrBool) error {
		if sch := node.Schema(); sch != nil && sch.Extra.Len() > 0 {
			t.Errorf("extension bag at %s not dropped: %v", path.Pointer(), sch.Extra.Keys())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
}

func TestImportYAMLForCRDKind_VersionSelection(t *testing.T) {
	s, diag, err := kubeopenapi.ImportYAMLForCRDKind(context.Background(), readBundle(t), "Widget", kubeopenapi.Options{Version: "v1alpha1"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !diag.HasWarnings() {
		t.Fatalf("expected not-served warning")
	}
	if s.Schema().Properties.Len() != 0 {
		t.Fatalf("expected the v1alpha1 schema")
	}
	_, _, err = kubeopenapi.ImportYAMLForCRDKind(context.Background(), readBundle(t), "Widget", kubeopenapi.Options{Version: "v9"})
	if !errors.Is(err, kubeopenapi.ErrNoSchema) {
		t.Fatalf("expected ErrNoSchema, got %v", err)
	}
}

func TestImportYAMLForCRDName_LegacyValidation(t *testing.T) {
	s, diag, err := kubeopenapi.ImportYAMLForCRDName(context.Background(), readBundle(t), "gadgets.demo.example.com", kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if diag.SchemaPointer() != "/spec/validation/openAPIV3Schema" {
		t.Fatalf("schema pointer = %q", diag.SchemaPointer())
	}
	if !s.Schema().Properties.Has("size") {
		t.Fatalf("size property missing")
	}
}

func TestImportYAMLForCRDKind_NotFound(t *testing.T) {
	_, _, err := kubeopenapi.ImportYAMLForCRDKind(context.Background(), readBundle(t), "Nope", kubeopenapi.Options{})
	if err == nil {
		t.Fatalf("expected not found error")
	}
}

func TestImport_MalformedKeyword(t *testing.T) {
	doc := schemanode.ObjectValue(
		schemanode.Member{Key: "openAPIV3Schema", Value: schemanode.ObjectValue(
			schemanode.Member{Key: "required", Value: schemanode.StringValue("name")},
		)},
	)
	_, _, err := kubeopenapi.Import(doc, kubeopenapi.Options{})
	if !errors.Is(err, schemanode.ErrMalformedKeyword) {
		t.Fatalf("expected malformed keyword, got %v", err)
	}
	iss, _ := schemanode.AsIssues(err)
	if iss[0].Path != "/required" {
		t.Fatalf("issue path = %q", iss[0].Path)
	}
}

func TestImport_NonObjectRootWarns(t *testing.T) {
	doc := schemanode.ObjectValue(schemanode.Member{Key: "type", Value: schemanode.StringValue("string")})
	_, diag, err := kubeopenapi.Import(doc, kubeopenapi.Options{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !diag.HasWarnings() {
		t.Fatalf("expected non-object warning")
	}
}
