package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	data := map[string]string{"keyword": "enum", "expected": "non-empty array", "got": "string"}
	if msg := T("malformed_keyword", data); msg != "keyword enum: expected non-empty array, got string" {
		t.Fatalf("unexpected english message: %q", msg)
	}

	SetLanguage("ja")
	defer SetLanguage("en")
	if msg := T("malformed_keyword", data); msg == "" || msg == "malformed_keyword" {
		t.Fatalf("expected japanese message, got %q", msg)
	}
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected code echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if msg := T("parse_error", nil); msg != "X:parse_error" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("parse_error", nil); msg != "parse error" {
		t.Fatalf("expected reset to english, got %q", msg)
	}
}
