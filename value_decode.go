package schemanode

import (
	"context"
	"errors"
	"io"

	eng "github.com/reoring/schemanode/internal/engine"
)

// DecodeValue reads exactly one JSON value from src, keeping object member
// order and number literals. Duplicate keys keep the position of the first
// occurrence and the value of the last unless ParseOpt.Strictness rejects them.
func DecodeValue(ctx context.Context, src Source, opts ...ParseOpt) (Value, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opt := lastOpt(opts)
	d := &valueDecoder{ctx: ctx, src: enforce(src, opt)}
	tok, err := d.src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, singleIssue(CodeParseError, "/", "empty document")
		}
		return Value{}, d.issues(err)
	}
	v, err := d.value(tok)
	if err != nil {
		return Value{}, d.issues(err)
	}
	if _, err := d.src.NextToken(); err == nil {
		return Value{}, Issues{{Code: CodeParseError, Path: "/", Message: "unexpected data after document", Offset: d.src.Location()}}
	} else if !errors.Is(err, io.EOF) {
		return Value{}, d.issues(err)
	}
	return v, nil
}

type valueDecoder struct {
	ctx context.Context
	src eng.TokenSource
}

func (d *valueDecoder) value(tok eng.Token) (Value, error) {
	switch tok.Kind {
	case eng.KindBeginObject:
		if err := d.ctx.Err(); err != nil {
			return Value{}, err
		}
		return d.object()
	case eng.KindBeginArray:
		return d.array()
	case eng.KindString:
		return StringValue(tok.String), nil
	case eng.KindNumber:
		return NumberValue(tok.Number), nil
	case eng.KindBool:
		return BoolValue(tok.Bool), nil
	case eng.KindNull:
		return Null(), nil
	default:
		return Value{}, errUnexpected(tok)
	}
}

func (d *valueDecoder) object() (Value, error) {
	members := []Member{}
	var index map[string]int
	for {
		tok, err := d.next()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == eng.KindEndObject {
			return ObjectValue(members...), nil
		}
		if tok.Kind != eng.KindKey {
			return Value{}, errUnexpected(tok)
		}
		vt, err := d.next()
		if err != nil {
			return Value{}, err
		}
		v, err := d.value(vt)
		if err != nil {
			return Value{}, err
		}
		if index == nil {
			index = make(map[string]int)
		}
		if i, dup := index[tok.String]; dup {
			members[i].Value = v
			continue
		}
		index[tok.String] = len(members)
		members = append(members, Member{Key: tok.String, Value: v})
	}
}

func (d *valueDecoder) array() (Value, error) {
	items := []Value{}
	for {
		tok, err := d.next()
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == eng.KindEndArray {
			return ArrayValue(items...), nil
		}
		v, err := d.value(tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
}

// next reads a token inside a container, where EOF means truncated input.
func (d *valueDecoder) next() (eng.Token, error) {
	tok, err := d.src.NextToken()
	if errors.Is(err, io.EOF) {
		return eng.Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}

func (d *valueDecoder) issues(err error) Issues {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Code: ie.Code, Path: ie.Path, Message: ie.Message, Offset: ie.Offset}}
	}
	if ctxErr := d.ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return Issues{{Code: CodeParseError, Path: "/", Message: "canceled", Cause: err, Offset: -1}}
	}
	return Issues{{Code: CodeParseError, Path: "/", Message: err.Error(), Cause: err, Offset: d.src.Location()}}
}

type unexpectedTokenError struct{ tok eng.Token }

func (e unexpectedTokenError) Error() string { return "unexpected token " + e.tok.Kind.String() }

func errUnexpected(tok eng.Token) error { return unexpectedTokenError{tok: tok} }

func singleIssue(code, path, msg string) Issues {
	return AppendIssues(nil, Issue{Code: code, Path: path, Message: msg, Offset: -1})
}
