package schemanode

import (
	"fmt"
	"strconv"
	"strings"

	eng "github.com/reoring/schemanode/internal/engine"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
// Values are immutable; Field and Index return extended copies.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Tokens() []string
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

type pathRef struct {
	parts []string // unescaped reference tokens
}

// RootPath returns the path of the document root.
func RootPath() PathRef { return &pathRef{} }

// ParsePointer splits an RFC 6901 JSON Pointer into a PathRef. A leading "#"
// (URI fragment form) is accepted.
func ParsePointer(ptr string) (PathRef, error) {
	ptr = strings.TrimPrefix(ptr, "#")
	if ptr == "" {
		return RootPath(), nil
	}
	if !strings.HasPrefix(ptr, "/") {
		return nil, fmt.Errorf("json pointer %q must start with '/'", ptr)
	}
	raw := strings.Split(ptr[1:], "/")
	parts := make([]string, len(raw))
	for i, r := range raw {
		parts[i] = strings.ReplaceAll(strings.ReplaceAll(r, "~1", "/"), "~0", "~")
	}
	return &pathRef{parts: parts}, nil
}

func (p *pathRef) Field(name string) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), name)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Tokens() []string { return append([]string(nil), p.parts...) }

// Pointer renders the path; the root is the empty string.
func (p *pathRef) Pointer() string {
	var b strings.Builder
	for _, t := range p.parts {
		b.WriteByte('/')
		b.WriteString(eng.EscapePointerToken(t))
	}
	return b.String()
}

func (p *pathRef) Issue(code, msg string, kv ...any) Issue {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[fmt.Sprint(kv[i])] = kv[i+1]
	}
	path := p.Pointer()
	if path == "" {
		path = "/"
	}
	return Issue{Path: path, Code: code, Message: msg, Params: m, Offset: -1}
}
