// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TimestampLayout is the ISO-8601 layout used for CreatedAt and UpdatedAt.
// It always renders in UTC with millisecond precision, e.g.
// "2026-03-01T12:00:00.000Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// CredentialRecord is one stored secret.
//
// All fields are serialized on every write, even when empty, so a record read
// back from disk always has the full shape.
type CredentialRecord struct {
	// ID identifies the record inside its collection. It is either supplied
	// by the caller or generated by the store on save.
	ID string `json:"id"`

	// Title is the human-readable display name of the record.
	Title string `json:"title"`

	// Username is the login the secret belongs to.
	Username string `json:"username"`

	// Password is the secret itself. It is stored as plain text.
	Password string `json:"password"`

	// Website is the URL or host the credential is used for.
	Website string `json:"website"`

	// Notes holds free-form text attached to the record.
	Notes string `json:"notes"`

	// CreatedAt is the ISO-8601 creation timestamp (see [TimestampLayout]).
	CreatedAt string `json:"createdAt"`

	// UpdatedAt is the ISO-8601 timestamp of the last modification.
	UpdatedAt string `json:"updatedAt"`
}

// CredentialCollection is the ordered set of records persisted as a whole.
// Order is display order. ID uniqueness is the caller's responsibility.
type CredentialCollection []CredentialRecord

// FormatTimestamp renders t in [TimestampLayout] after converting it to UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// DuplicateIDs returns every non-empty ID that occurs more than once in c,
// in order of first repetition.
func (c CredentialCollection) DuplicateIDs() []string {
	seen := make(map[string]int, len(c))
	var dups []string
	for _, r := range c {
		if r.ID == "" {
			continue
		}
		seen[r.ID]++
		if seen[r.ID] == 2 {
			dups = append(dups, r.ID)
		}
	}
	return dups
}
