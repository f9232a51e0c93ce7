package models

import (
	"errors"
	"fmt"
)

// ErrorKind represents the different ways loading a database can fail
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindIO
	KindDecode
	KindArchive
	KindParse
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindIO:
		return "IO"
	case KindDecode:
		return "Decode"
	case KindArchive:
		return "Archive"
	case KindParse:
		return "Parse"
	default:
		return "Unknown"
	}
}

// Sentinels for use with errors.Is. They match any DBError of the same kind.
var (
	ErrNotFound = &DBError{Kind: KindNotFound}
	ErrIO       = &DBError{Kind: KindIO}
	ErrDecode   = &DBError{Kind: KindDecode}
	ErrArchive  = &DBError{Kind: KindArchive}
	ErrParse    = &DBError{Kind: KindParse}
)

// DBError represents an error while loading a sync database
type DBError struct {
	Kind ErrorKind
	// Path is the database file
	Path string
	// Entry is the archive entry being processed, if any
	Entry string
	Err   error
}

// Error implements the error interface
func (e *DBError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Path)
	if e.Entry != "" {
		msg += ": " + e.Entry
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the wrapped error
func (e *DBError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DBError of the same kind
func (e *DBError) Is(target error) bool {
	t, ok := target.(*DBError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first DBError in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return dbErr.Kind, true
	}
	return 0, false
}
