package repository

import (
	"database/sql/driver"
	"encoding/json"
	"strings"

	"github.com/ayurscope/ayurscope/pkg/domain"
)

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// stringsSQL is a JSON array of strings for SQL operations
type stringsSQL []string

// Value implements driver.Valuer for database storage
func (s stringsSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *stringsSQL) Scan(value interface{}) error {
	if value == nil {
		*s = stringsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), s)
	}

	return json.Unmarshal(data, s)
}

// symptomsSQL is a JSON array of symptoms for SQL operations
type symptomsSQL []domain.Symptom

// Value implements driver.Valuer for database storage
func (s symptomsSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *symptomsSQL) Scan(value interface{}) error {
	if value == nil {
		*s = symptomsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), s)
	}

	return json.Unmarshal(data, s)
}

// flagsSQL is a JSON array of safety flag matches for SQL operations
type flagsSQL []domain.FlagMatch

// Value implements driver.Valuer for database storage
func (f flagsSQL) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for database retrieval
func (f *flagsSQL) Scan(value interface{}) error {
	if value == nil {
		*f = flagsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), f)
	}

	return json.Unmarshal(data, f)
}

// idsSQL is a JSON array of int64 identifiers for SQL operations
type idsSQL []int64

// Value implements driver.Valuer for database storage
func (i idsSQL) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}
	return json.Marshal(i)
}

// Scan implements sql.Scanner for database retrieval
func (i *idsSQL) Scan(value interface{}) error {
	if value == nil {
		*i = idsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), i)
	}

	return json.Unmarshal(data, i)
}

// vitalsSQL is an optional JSON vitals snapshot, stored as NULL when absent
type vitalsSQL struct {
	Vitals *domain.Vitals
}

// Value implements driver.Valuer for database storage
func (v vitalsSQL) Value() (driver.Value, error) {
	if v.Vitals == nil {
		return nil, nil
	}
	return json.Marshal(v.Vitals)
}

// Scan implements sql.Scanner for database retrieval
func (v *vitalsSQL) Scan(value interface{}) error {
	if value == nil {
		v.Vitals = nil
		return nil
	}

	var data []byte
	switch val := value.(type) {
	case []byte:
		data = val
	case string:
		data = []byte(val)
	default:
		v.Vitals = nil
		return nil
	}

	var out domain.Vitals
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	v.Vitals = &out
	return nil
}
