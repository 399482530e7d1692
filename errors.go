package main

import (
	"errors"
	"fmt"
	"io/fs"
)

var ErrUsage = errors.New("invalid usage")

type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNotFound
	KindPermission
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	default:
		return "i/o error"
	}
}

// kindOf classifies err by the fs sentinel it wraps.
func kindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	default:
		return KindOther
	}
}

type Op string

const (
	OpScan  Op = "scan"
	OpWrite Op = "write"
)

// TraceError is returned by every failing filesystem operation.
// Op tells whether the traversal or the output side failed.
type TraceError struct {
	Op   Op
	Path string
	Kind ErrorKind
	Err  error
}

func newTraceError(op Op, path string, err error) *TraceError {
	return &TraceError{Op: op, Path: path, Kind: kindOf(err), Err: err}
}

func (e *TraceError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *TraceError) Unwrap() error { return e.Err }
