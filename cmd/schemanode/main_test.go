package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestFmtCmd_Compact(t *testing.T) {
	p := writeTemp(t, "s.json", `{ "type" : "object", "properties": { "a": true } }`)
	var out bytes.Buffer
	if err := fmtCmd([]string{"-compact", p}, &out); err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if got := out.String(); got != "{\"type\":\"object\",\"properties\":{\"a\":true}}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFmtCmd_YAMLByExtension(t *testing.T) {
	p := writeTemp(t, "s.yaml", "type: string\nminLength: 1\n")
	var out bytes.Buffer
	if err := fmtCmd([]string{"-compact", p}, &out); err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if got := out.String(); got != "{\"type\":\"string\",\"minLength\":1}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFmtCmd_Malformed(t *testing.T) {
	p := writeTemp(t, "bad.json", `{"required":"name"}`)
	var out bytes.Buffer
	if err := fmtCmd([]string{p}, &out); err == nil {
		t.Fatalf("expected malformed keyword error")
	}
}

func TestFmtCmd_Placeholder(t *testing.T) {
	p := writeTemp(t, "bad.json", `{"properties":{"a":{"required":"name"},"b":{"type":"string"}}}`)
	var out bytes.Buffer
	if err := fmtCmd([]string{"-compact", "-placeholder", p}, &out); err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if got := out.String(); got != "{\"properties\":{\"a\":true,\"b\":{\"type\":\"string\"}}}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWalkCmd(t *testing.T) {
	p := writeTemp(t, "s.json", `{"properties":{"a":false,"b":{"type":"string"}}}`)
	var out bytes.Buffer
	if err := walkCmd([]string{p}, &out); err != nil {
		t.Fatalf("walk: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{"#\tschema\tproperties", "/properties/a\tfalse", "/properties/b\tschema\ttype"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWalkCmd_Depth(t *testing.T) {
	p := writeTemp(t, "s.json", `{"not":{"not":{"not":{}}}}`)
	var out bytes.Buffer
	if err := walkCmd([]string{"-depth", "1", p}, &out); err != nil {
		t.Fatalf("walk: %v", err)
	}
	if n := strings.Count(out.String(), "\n"); n != 2 {
		t.Fatalf("expected 2 nodes, got %d:\n%s", n, out.String())
	}
}

func TestRefsCmd_Unresolved(t *testing.T) {
	p := writeTemp(t, "s.json", `{"definitions":{"a":{}},"allOf":[{"$ref":"#/definitions/a"},{"$ref":"#/definitions/b"}]}`)
	var out bytes.Buffer
	if err := refsCmd([]string{"-unresolved", p}, &out); err != nil {
		t.Fatalf("refs: %v", err)
	}
	if got := out.String(); got != "/allOf/1\t$ref\t#/definitions/b\n" {
		t.Fatalf("got %q", got)
	}
}

func TestCRDCmd(t *testing.T) {
	p := writeTemp(t, "crd.yaml", `apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata:
  name: widgets.demo.example.com
spec:
  names:
    kind: Widget
  versions:
    - name: v1
      served: true
      schema:
        openAPIV3Schema:
          type: object
          x-kubernetes-preserve-unknown-fields: true
`)
	var out bytes.Buffer
	if err := crdCmd([]string{"-kind", "Widget", p}, &out); err != nil {
		t.Fatalf("crd: %v", err)
	}
	want := "{\n  \"type\": \"object\",\n  \"x-kubernetes-preserve-unknown-fields\": true\n}\n"
	if out.String() != want {
		t.Fatalf("got %q", out.String())
	}
}
