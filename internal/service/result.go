// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"context"
	"errors"
	"fmt"

	"folio/internal/store"
)

// Source tells where the value of a Result came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// ErrorKind classifies why an operation did not complete against the remote
// store.
type ErrorKind int

const (
	// KindNone means the remote call succeeded.
	KindNone ErrorKind = iota
	// KindEmpty means the remote read succeeded without the requested rows
	// and the fallback data was substituted.
	KindEmpty
	// KindUnavailable covers network, credential and schema failures, and a
	// missing remote store.
	KindUnavailable
	// KindCanceled means the caller's context ended first.
	KindCanceled
	// KindNotFound means neither the remote nor the fallback data held the
	// requested record.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindEmpty:
		return "empty"
	case KindUnavailable:
		return "unavailable"
	case KindCanceled:
		return "canceled"
	case KindNotFound:
		return "not_found"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Result is the internal outcome of a data operation. The exported
// List/Get/Create/Update/Delete methods collapse it into a plain value (and
// a Notice for writes); the *Result variants expose it for callers that need
// to know whether the value is authoritative.
type Result[T any] struct {
	Value  T
	Source Source
	Kind   ErrorKind
	Err    error
}

// Fallback reports whether the value came from the local dataset.
func (r Result[T]) Fallback() bool { return r.Source == SourceFallback }

func remote[T any](v T) Result[T] {
	return Result[T]{Value: v, Source: SourceRemote}
}

func fallback[T any](v T, kind ErrorKind, err error) Result[T] {
	return Result[T]{Value: v, Source: SourceFallback, Kind: kind, Err: err}
}

// classify maps a remote error to an ErrorKind.
func classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, store.ErrNotFound):
		return KindNotFound
	default:
		return KindUnavailable
	}
}

// NoticeLevel is the severity of a Notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is the toast a write hands to the presentation layer. Writes that
// only reached the fallback data still produce a success notice.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

func successNotice(label, verb string) Notice {
	return Notice{
		Level:   NoticeSuccess,
		Title:   "Success",
		Message: fmt.Sprintf("%s %s successfully.", label, verb),
	}
}
