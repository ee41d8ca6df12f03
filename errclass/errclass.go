// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package errclass implements error classification.

The general idea is to classify golang errors to an enum of strings
with names resembling standard Unix error names.

# Design Principles

1. Preserve original error in `err` in the structured logs.

2. Add the classified error as the `errClass` field.

3. Use [errors.Is] and [errors.As] for classification.

4. Use string-based classification for readability.

5. Prefix subsystem-specific errors (`EADDR_`, `EDNS_`).

6. Map the nil error to an empty string.

# Address Errors

- [EADDR_PARSE] for [netaddr.ErrAddrParse]

- [EINVAL] for [netaddr.ErrInvalidInput]

# Other Errors

Every other error is classified by [errclass.New], which handles
timeouts, interrupted operations, system errors and DNS errors
(e.g., [EDNS_NONAME] for errors with the "no such host" suffix).

# Fallback

- [EGENERIC] for unclassified errors
*/
package errclass

import (
	"errors"

	"github.com/rbmk-project/common/errclass"
	"github.com/rbmk-project/sockaddr/netaddr"
)

const (
	// EADDR_PARSE indicates that an IP or socket address is malformed.
	EADDR_PARSE = "EADDR_PARSE"

	// EINVAL is the invalid argument error.
	EINVAL = errclass.EINVAL

	// EINTR is the interrupted system call error.
	EINTR = errclass.EINTR

	// ETIMEDOUT is the operation timed out error.
	ETIMEDOUT = errclass.ETIMEDOUT

	// EDNS_NONAME is the DNS error for "no such host".
	EDNS_NONAME = errclass.EDNS_NONAME

	// EDNS_NODATA is the DNS error for "no answer".
	EDNS_NODATA = errclass.EDNS_NODATA

	// EGENERIC is the generic, unclassified error.
	EGENERIC = errclass.EGENERIC
)

// New returns the class of err or an empty string if err is nil.
func New(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, netaddr.ErrAddrParse):
		return EADDR_PARSE
	case errors.Is(err, netaddr.ErrInvalidInput):
		return EINVAL
	default:
		return errclass.New(err)
	}
}
