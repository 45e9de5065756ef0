package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/toolbox-vault/models"
)

// IDGenerator produces identifiers for records saved without one.
type IDGenerator interface {
	Generate() string
}

// rawRecord is a record decoded field by field, before defaults are applied.
// A field that was absent or null is left out of the map.
type rawRecord map[string]string

var recordFields = []string{"id", "title", "username", "password", "website", "notes", "createdAt", "updatedAt"}

// decodeCollection checks that data is a JSON array of objects and coerces
// every known field to a string. Unknown fields are dropped.
func decodeCollection(data []byte) ([]rawRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("expected a JSON array")
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, err
	}

	records := make([]rawRecord, 0, len(elems))
	for i, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			return nil, fmt.Errorf("element %d is not an object", i)
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		rec := make(rawRecord, len(recordFields))
		for _, name := range recordFields {
			raw, ok := fields[name]
			if !ok {
				continue
			}
			value, present, err := scalarText(raw)
			if err != nil {
				return nil, fmt.Errorf("element %d field %q: %w", i, name, err)
			}
			if present {
				rec[name] = value
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// scalarText returns the text of a JSON scalar. Strings are unquoted, numbers
// and booleans keep their literal form, null reports present=false.
func scalarText(raw json.RawMessage) (value string, present bool, err error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		return "", false, nil
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false, err
		}
		return s, true, nil
	case raw[0] == '{' || raw[0] == '[':
		return "", false, fmt.Errorf("nested values are not allowed")
	case bytes.Equal(raw, []byte("true")) || bytes.Equal(raw, []byte("false")):
		return string(raw), true, nil
	default:
		// already validated as JSON, so this is a number
		return string(raw), true, nil
	}
}

// toCollection converts decoded records without filling in defaults. Used on
// load, where the file is taken as is.
func toCollection(records []rawRecord) models.CredentialCollection {
	out := make(models.CredentialCollection, 0, len(records))
	for _, r := range records {
		out = append(out, r.record())
	}
	return out
}

func (r rawRecord) record() models.CredentialRecord {
	return models.CredentialRecord{
		ID:        r["id"],
		Title:     r["title"],
		Username:  r["username"],
		Password:  r["password"],
		Website:   r["website"],
		Notes:     r["notes"],
		CreatedAt: r["createdAt"],
		UpdatedAt: r["updatedAt"],
	}
}

// sanitizer fills in the store-owned fields of records being saved.
type sanitizer struct {
	ids IDGenerator
	now func() time.Time
}

// sanitize returns records with every field present, a generated ID where
// none was given and timestamps defaulted to the current time. The same
// timestamp is used for the whole batch.
func (s sanitizer) sanitize(records []rawRecord) models.CredentialCollection {
	now := models.FormatTimestamp(s.now())

	out := make(models.CredentialCollection, 0, len(records))
	for _, r := range records {
		rec := r.record()
		if rec.ID == "" {
			rec.ID = s.ids.Generate()
		}
		if rec.CreatedAt == "" {
			rec.CreatedAt = now
		}
		if rec.UpdatedAt == "" {
			rec.UpdatedAt = now
		}
		out = append(out, rec)
	}
	return out
}

// encodeCollection renders c as an indented JSON array.
func encodeCollection(c models.CredentialCollection) ([]byte, error) {
	if c == nil {
		c = models.CredentialCollection{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
