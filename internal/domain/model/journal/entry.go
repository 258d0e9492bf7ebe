package journal

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// DateLayout is the calendar date format used for entry dates
const DateLayout = "2006-01-02"

// EntryID represents a unique identifier for a journal entry
type EntryID struct {
	value string
}

// NewEntryID generates a new EntryID using ULID. ULIDs encode milliseconds
// since the Unix epoch, so times before 1970 are rejected.
func NewEntryID(at time.Time) (EntryID, error) {
	if at.Before(time.Unix(0, 0)) {
		return EntryID{}, fmt.Errorf("%s is before 1970-01-01: %w", at.UTC().Format(DateLayout), ulid.ErrBigTime)
	}
	id, err := ulid.New(ulid.Timestamp(at), ulid.Monotonic(rand.Reader, 0))
	if err != nil {
		return EntryID{}, fmt.Errorf("failed to generate entry ID: %w", err)
	}
	return EntryID{value: id.String()}, nil
}

// NewEntryIDFromString creates an EntryID from an existing string
func NewEntryIDFromString(id string) (EntryID, error) {
	if id == "" {
		return EntryID{}, errors.New("entry ID cannot be empty")
	}
	if _, err := ulid.ParseStrict(id); err != nil {
		return EntryID{}, fmt.Errorf("invalid entry ID %q: %w", id, err)
	}
	return EntryID{value: id}, nil
}

// fixedEntryID derives a stable ID from the entry date alone.
// Used for bundled sample data so repeated loads agree on identity.
func fixedEntryID(date time.Time) EntryID {
	return EntryID{value: ulid.MustNew(ulid.Timestamp(date), nil).String()}
}

// String returns the string representation
func (id EntryID) String() string {
	return id.value
}

// Entry is one dated journal entry. Entries are immutable once built.
type Entry struct {
	id      EntryID
	date    time.Time
	content string
}

// NewEntry creates an entry for the given date with a freshly generated ID
func NewEntry(date time.Time, content string) (Entry, error) {
	id, err := NewEntryID(date)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		id:      id,
		date:    TruncateToDate(date),
		content: content,
	}, nil
}

// ReconstructEntry rebuilds an entry from stored data
func ReconstructEntry(id EntryID, date time.Time, content string) Entry {
	return Entry{
		id:      id,
		date:    TruncateToDate(date),
		content: content,
	}
}

// Getters
func (e Entry) ID() EntryID        { return e.id }
func (e Entry) Date() time.Time    { return e.date }
func (e Entry) Content() string    { return e.content }
func (e Entry) DateString() string { return e.date.Format(DateLayout) }

// IsBlank reports whether the entry has no visible content
func (e Entry) IsBlank() bool {
	return strings.TrimSpace(e.content) == ""
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want %s): %w", s, DateLayout, err)
	}
	return t, nil
}

// TruncateToDate returns UTC midnight of t's UTC calendar day
func TruncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
