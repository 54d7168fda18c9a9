// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package backend

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed fetch.
type ErrorKind string

const (
	// KindNetwork means no usable response arrived: connection failure,
	// timeout, cancellation, or the circuit breaker rejected the call.
	KindNetwork ErrorKind = "network"

	// KindHTTP means the backend answered with a non-2xx status.
	KindHTTP ErrorKind = "http"

	// KindDecode means the body could not be parsed into the expected shape.
	KindDecode ErrorKind = "decode"
)

// FetchError is returned by every Client operation on failure.
type FetchError struct {
	Endpoint   string
	Kind       ErrorKind
	StatusCode int    // set for KindHTTP
	Reason     string // short human-readable cause
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTP:
		if e.Reason != "" {
			return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.StatusCode, e.Reason)
		}
		return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("failed to decode %s: %v", e.Endpoint, e.Err)
	default:
		if e.Reason != "" {
			return fmt.Sprintf("%s request failed: %s: %v", e.Endpoint, e.Reason, e.Err)
		}
		return fmt.Sprintf("%s request failed: %v", e.Endpoint, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a *FetchError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}
