package schemanode

import (
	"context"
	"io"
)

// Parse is the primary entry point. It reads one document from src and
// constructs its schema tree. Malformed keywords fail with Issues matching
// ErrMalformedKeyword; unreadable input fails with Issues matching ErrParse.
// $ref values are stored verbatim and never followed.
func Parse(ctx context.Context, src Source, opts ...ParseOpt) (*SchemaOrBool, error) {
	v, err := DecodeValue(ctx, src, opts...)
	if err != nil {
		return nil, err
	}
	return FromValue(v, opts...)
}

// ParseBytes parses JSON text with the current JSON driver.
func ParseBytes(ctx context.Context, b []byte, opts ...ParseOpt) (*SchemaOrBool, error) {
	return Parse(ctx, JSONBytes(b), opts...)
}

// ParseReader parses JSON from r. When MaxBytes is set the size cap is
// enforced up front, otherwise tokens are streamed from r.
func ParseReader(ctx context.Context, r io.Reader, opts ...ParseOpt) (*SchemaOrBool, error) {
	if limit := lastOpt(opts).MaxBytes; limit > 0 {
		data, err := io.ReadAll(io.LimitReader(r, limit+1))
		if err != nil {
			return nil, Issues{{Code: CodeParseError, Path: "/", Message: err.Error(), Cause: err, Offset: -1}}
		}
		if int64(len(data)) > limit {
			return nil, singleIssue(CodeTruncated, "/", "max bytes exceeded")
		}
		return ParseBytes(ctx, data, opts...)
	}
	return Parse(ctx, JSONReader(r), opts...)
}

// ParseYAML parses the first document of a YAML stream. Key order is kept.
func ParseYAML(ctx context.Context, b []byte, opts ...ParseOpt) (*SchemaOrBool, error) {
	return Parse(ctx, YAMLBytes(b), opts...)
}

// FromValue constructs a schema from an already decoded value. A boolean
// yields a boolean schema, an object a structured one; anything else is
// malformed. In collect mode (the default) every malformed keyword in the
// tree is reported. With ParseOpt.Placeholder the partially built tree is
// returned alongside the Issues instead of nil.
func FromValue(v Value, opts ...ParseOpt) (*SchemaOrBool, error) {
	c := &constructor{opt: lastOpt(opts)}
	r := c.schemaOrBool(v, RootPath(), "")
	if len(c.issues) > 0 {
		if c.opt.Placeholder {
			return r, c.issues
		}
		return nil, c.issues
	}
	return r, nil
}

// FromAny constructs a schema from generic Go values as produced by
// json.Unmarshal into any. Go maps are unordered, so object keys are sorted.
func FromAny(x any, opts ...ParseOpt) (*SchemaOrBool, error) {
	v, err := ValueOf(x)
	if err != nil {
		return nil, Issues{{Code: CodeParseError, Path: "/", Message: err.Error(), Cause: err, Offset: -1}}
	}
	return FromValue(v, opts...)
}
