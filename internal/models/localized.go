package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// LocalizedText maps a language code ("en", "ro", ...) to display text.
// Stored as a JSON column.
type LocalizedText map[string]string

func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return "{}", nil
	}
	b, err := json.Marshal(t)
	return string(b), err
}

func (t *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*t = LocalizedText{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for LocalizedText")
	}
	return json.Unmarshal(data, t)
}

// In returns the text for lang, falling back to English and then to any
// available language.
func (t LocalizedText) In(lang string) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	if s, ok := t["en"]; ok && s != "" {
		return s
	}
	for _, s := range t {
		if s != "" {
			return s
		}
	}
	return ""
}
