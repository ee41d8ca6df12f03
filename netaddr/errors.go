// SPDX-License-Identifier: GPL-3.0-or-later

package netaddr

import (
	"errors"
	"fmt"
)

// ErrAddrParse is returned when parsing an IP or socket address fails.
//
// The error intentionally carries no details about the reason
// why parsing failed.
var ErrAddrParse = errors.New("invalid IP address syntax")

// ErrInvalidInput indicates that a value could not be converted
// to a well formed host and port pair.
var ErrInvalidInput = errors.New("invalid input")

var (
	errInvalidSocketAddr = fmt.Errorf("%w: invalid socket address", ErrInvalidInput)
	errInvalidPort       = fmt.Errorf("%w: invalid port value", ErrInvalidInput)
)

// LookupError is returned when the [HostLookup] fails.
type LookupError struct {
	// Host is the host name we were resolving.
	Host string

	// Err is the error returned by the [HostLookup].
	Err error
}

// Error implements error.
func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %s: %s", e.Host, e.Err.Error())
}

// Unwrap returns the underlying error.
func (e *LookupError) Unwrap() error {
	return e.Err
}
