package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Entry is a single ingredient or step as stored in a recipe. Seeded
// catalogs mix plain strings with structured records ({name, amount,
// unit, original} for ingredients, {step} for instructions), so the
// stored form is decoded into a tagged variant here, at the storage
// boundary, instead of probing shapes at render time.
type Entry struct {
	// Text is the display fallback: the string itself for plain
	// entries, the compact JSON form for everything else.
	Text string

	// Structured is true when the stored value was a JSON object.
	Structured bool
	Original   string
	Name       string
	Step       string

	raw json.RawMessage
}

// TextEntry wraps a plain display string.
func TextEntry(s string) Entry {
	return Entry{Text: s}
}

// UnmarshalJSON accepts any JSON value. Strings pass through,
// objects become the structured variant, and anything else keeps its
// compact textual form. It never fails.
func (e *Entry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	raw := make(json.RawMessage, len(trimmed))
	copy(raw, trimmed)

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		*e = Entry{Text: s, raw: raw}
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var obj struct {
			Original string `json:"original"`
			Name     string `json:"name"`
			Step     string `json:"step"`
		}
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			*e = Entry{
				Text:       compactString(trimmed),
				Structured: true,
				Original:   obj.Original,
				Name:       obj.Name,
				Step:       obj.Step,
				raw:        raw,
			}
			return nil
		}
	}

	*e = Entry{Text: compactString(trimmed), raw: raw}
	return nil
}

// MarshalJSON re-emits the stored form so round trips through the
// database do not flatten structured entries.
func (e Entry) MarshalJSON() ([]byte, error) {
	if len(e.raw) > 0 {
		return e.raw, nil
	}
	return json.Marshal(e.Text)
}

// IngredientString resolves the display text for an ingredient:
// original, then name, then the raw textual form.
func (e Entry) IngredientString() string {
	if e.Structured {
		if e.Original != "" {
			return e.Original
		}
		if e.Name != "" {
			return e.Name
		}
	}
	return e.Text
}

// StepString resolves the display text for an instruction step.
func (e Entry) StepString() string {
	if e.Structured && e.Step != "" {
		return e.Step
	}
	return e.Text
}

func compactString(data []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return string(bytes.TrimSpace(data))
	}
	return buf.String()
}

// EntryList is an ordered sequence of entries stored as a JSON array
// column (jsonb on Postgres, text on SQLite).
type EntryList []Entry

// Value implements the driver.Valuer interface
func (l EntryList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *EntryList) Scan(value interface{}) error {
	if value == nil {
		*l = EntryList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T for entry list", value)
	}

	return json.Unmarshal(bytes, l)
}

// IngredientStrings normalizes the list to display text, one string
// per entry, preserving order.
func (l EntryList) IngredientStrings() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.IngredientString()
	}
	return out
}

// StepStrings normalizes the list to display text, one string per
// entry, preserving order.
func (l EntryList) StepStrings() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.StepString()
	}
	return out
}

// NumberedSteps renders the steps with 1-based positions ("Step 1:
// ..."), the form used when building assistant context.
func (l EntryList) NumberedSteps() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = fmt.Sprintf("Step %d: %s", i+1, e.StepString())
	}
	return out
}

// TextEntries builds a list of plain entries, the shape uploads and
// seeds use when no structured data is available.
func TextEntries(ss ...string) EntryList {
	out := make(EntryList, len(ss))
	for i, s := range ss {
		out[i] = TextEntry(s)
	}
	return out
}
