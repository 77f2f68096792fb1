// Package i18n renders human-readable messages for schemanode issue codes.
package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "keyword" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data; unknown placeholders are left empty.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"malformed_keyword": "keyword {keyword}: expected {expected}, got {got}",
		"inverted_bounds":   "keyword {keyword} is smaller than {other}",
		"duplicate_key":     "duplicate key",
		"parse_error":       "parse error",
		"truncated":         "truncated",
	},
	"ja": {
		"malformed_keyword": "キーワード {keyword} の値が不正です（期待: {expected}、実際: {got}）",
		"inverted_bounds":   "キーワード {keyword} が {other} より小さくなっています",
		"duplicate_key":     "キーが重複しています",
		"parse_error":       "解析エラー",
		"truncated":         "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	var b strings.Builder
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		b.WriteString(tmpl[:i])
		b.WriteString(data[tmpl[i+1:i+j]])
		tmpl = tmpl[i+j+1:]
	}
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores English.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
