package nav

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// LabelEntry is a single language/value pair inside a multi-language label.
type LabelEntry struct {
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

// LocalizedString is a display label that is either a plain string or an
// ordered set of per-language values. The entry order matches the insertion
// order of the source document and is significant: resolution falls back to
// the first non-empty entry when neither the preferred nor the fallback
// language is present.
//
// The zero value is a plain empty label.
type LocalizedString struct {
	text    string
	entries []LabelEntry
	multi   bool
}

// Label builds a plain single-language label.
func Label(text string) LocalizedString {
	return LocalizedString{text: text}
}

// MultiLabel builds a multi-language label preserving the given entry order.
func MultiLabel(entries ...LabelEntry) LocalizedString {
	copied := make([]LabelEntry, len(entries))
	copy(copied, entries)
	return LocalizedString{entries: copied, multi: true}
}

// IsMultiLang reports whether the label carries per-language values,
// regardless of whether any of them are set.
func (s LocalizedString) IsMultiLang() bool {
	return s.multi
}

// IsSet reports whether the label resolves to a non-empty value. A
// multi-language label with only empty entries is equivalent to unset.
func (s LocalizedString) IsSet() bool {
	if !s.multi {
		return strings.TrimSpace(s.text) != ""
	}
	for _, entry := range s.entries {
		if strings.TrimSpace(entry.Value) != "" {
			return true
		}
	}
	return false
}

// Value returns the raw value stored for a language. Plain labels always
// return the empty string.
func (s LocalizedString) Value(lang string) string {
	for _, entry := range s.entries {
		if entry.Lang == lang {
			return entry.Value
		}
	}
	return ""
}

// Entries returns a copy of the per-language entries in insertion order.
func (s LocalizedString) Entries() []LabelEntry {
	if len(s.entries) == 0 {
		return nil
	}
	copied := make([]LabelEntry, len(s.entries))
	copy(copied, s.entries)
	return copied
}

// Resolve returns the displayable value for the preferred language, falling
// back to the fallback language, then the first non-empty entry, then the
// empty string. Plain labels are returned unchanged.
func (s LocalizedString) Resolve(lang, fallback string) string {
	if !s.multi {
		return s.text
	}
	if value := s.Value(lang); value != "" {
		return value
	}
	if fallback != "" {
		if value := s.Value(fallback); value != "" {
			return value
		}
	}
	for _, entry := range s.entries {
		if entry.Value != "" {
			return entry.Value
		}
	}
	return ""
}

// MarshalJSON renders plain labels as JSON strings and multi-language labels
// as objects whose key order matches the entry order.
func (s LocalizedString) MarshalJSON() ([]byte, error) {
	if !s.multi {
		return json.Marshal(s.text)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Lang)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts either a JSON string or an object of language/value
// pairs. Object key order is preserved.
func (s *LocalizedString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = LocalizedString{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*s = LocalizedString{text: text}
		return nil
	case '{':
		decoder := json.NewDecoder(bytes.NewReader(trimmed))
		if _, err := decoder.Token(); err != nil {
			return err
		}
		var entries []LabelEntry
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return err
			}
			key, ok := keyToken.(string)
			if !ok {
				return fmt.Errorf("nav: label object key must be a string")
			}
			var value string
			if err := decoder.Decode(&value); err != nil {
				return fmt.Errorf("nav: label value for %q must be a string: %w", key, err)
			}
			entries = append(entries, LabelEntry{Lang: key, Value: value})
		}
		if _, err := decoder.Token(); err != nil {
			return err
		}
		*s = LocalizedString{entries: entries, multi: true}
		return nil
	default:
		return fmt.Errorf("nav: label must be a string or an object")
	}
}
