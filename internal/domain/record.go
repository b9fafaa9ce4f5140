package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"

	"cloud.google.com/go/civil"

	"todo/internal/errors"
)

// Record field names.
const (
	FieldID        = "id"
	FieldTitle     = "title"
	FieldCompleted = "completed"
	FieldPriority  = "priority"
	FieldCategory  = "category"
	FieldNotes     = "notes"
	FieldDueDate   = "due_date"
)

var recordFields = map[string]bool{
	FieldID:        true,
	FieldTitle:     true,
	FieldCompleted: true,
	FieldPriority:  true,
	FieldCategory:  true,
	FieldNotes:     true,
	FieldDueDate:   true,
}

// Record is the flat key-value form of a Task used for storage and
// transmission. Unset optional values are present with a nil value.
type Record map[string]interface{}

// ToRecord encodes the task. The result always holds all seven fields.
func (t Task) ToRecord() Record {
	r := Record{
		FieldID:        t.ID,
		FieldTitle:     t.Title,
		FieldCompleted: t.Completed,
		FieldPriority:  t.Priority,
		FieldCategory:  nil,
		FieldNotes:     nil,
		FieldDueDate:   nil,
	}
	if t.Category != nil {
		r[FieldCategory] = *t.Category
	}
	if t.Notes != nil {
		r[FieldNotes] = *t.Notes
	}
	if t.DueDate != nil {
		r[FieldDueDate] = t.DueDate.String()
	}
	return r
}

// DecodeOption adjusts how DecodeRecord treats its input.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	allowUnknown bool
}

// AllowUnknownFields makes decoding ignore keys outside the record shape
// instead of failing with an unexpected field error.
func AllowUnknownFields() DecodeOption {
	return func(o *decodeOptions) {
		o.allowUnknown = true
	}
}

// FromRecord decodes a record strictly: unknown keys are rejected.
func FromRecord(r Record) (Task, error) {
	return DecodeRecord(r)
}

// DecodeRecord builds a Task from a record.
//
// id and title are required; a nil value counts as missing. completed and
// priority fall back to their defaults when absent or nil. due_date must be
// YYYY-MM-DD text; nil or the empty string means no due date.
func DecodeRecord(r Record, opts ...DecodeOption) (Task, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	rawID, ok := r[FieldID]
	if !ok || rawID == nil {
		return Task{}, errors.NewMissingFieldError(FieldID)
	}
	rawTitle, ok := r[FieldTitle]
	if !ok || rawTitle == nil {
		return Task{}, errors.NewMissingFieldError(FieldTitle)
	}

	if !o.allowUnknown {
		if unknown := unknownFields(r); len(unknown) > 0 {
			return Task{}, errors.NewUnexpectedFieldError(unknown)
		}
	}

	id, ok := toInt64(rawID)
	if !ok {
		return Task{}, errors.NewFormatError(FieldID, rawID, "expected an integer", nil)
	}
	title, ok := rawTitle.(string)
	if !ok {
		return Task{}, errors.NewFormatError(FieldTitle, rawTitle, "expected text", nil)
	}

	t := NewTask(id, title)

	if v := r[FieldCompleted]; v != nil {
		completed, ok := v.(bool)
		if !ok {
			return Task{}, errors.NewFormatError(FieldCompleted, v, "expected a boolean", nil)
		}
		t.Completed = completed
	}
	if v := r[FieldPriority]; v != nil {
		priority, ok := v.(string)
		if !ok {
			return Task{}, errors.NewFormatError(FieldPriority, v, "expected text", nil)
		}
		t.Priority = priority
	}

	var err error
	if t.Category, err = optionalString(r, FieldCategory); err != nil {
		return Task{}, err
	}
	if t.Notes, err = optionalString(r, FieldNotes); err != nil {
		return Task{}, err
	}
	if t.DueDate, err = optionalDate(r, FieldDueDate); err != nil {
		return Task{}, err
	}

	return t, nil
}

// ParseDate parses YYYY-MM-DD text into a calendar date.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, errors.NewFormatError(FieldDueDate, s, "expected a date in YYYY-MM-DD format", err)
	}
	return d, nil
}

// MarshalJSON encodes the task as its record.
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToRecord())
}

// UnmarshalJSON decodes a JSON object strictly through FromRecord.
func (t *Task) UnmarshalJSON(data []byte) error {
	r, err := DecodeJSONRecord(data)
	if err != nil {
		return err
	}
	decoded, err := FromRecord(r)
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}

// DecodeJSONRecord parses a JSON object into a Record, keeping numbers
// as json.Number so large ids survive intact.
func DecodeJSONRecord(data []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var r Record
	if err := dec.Decode(&r); err != nil {
		return nil, errors.NewFormatError("record", string(data), "expected a JSON object", err)
	}
	if r == nil {
		return nil, errors.NewFormatError("record", string(data), "expected a JSON object", nil)
	}
	return r, nil
}

func unknownFields(r Record) []string {
	var unknown []string
	for key := range r {
		if !recordFields[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func optionalString(r Record, field string) (*string, error) {
	v := r[field]
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, errors.NewFormatError(field, v, "expected text or null", nil)
	}
	return &s, nil
}

func optionalDate(r Record, field string) (*civil.Date, error) {
	v := r[field]
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, errors.NewFormatError(field, v, "expected a date in YYYY-MM-DD format", nil)
	}
	if s == "" {
		return nil, nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
