//
// Copyright (c) 2020 Markku Rossi
//
// All rights reserved.
//

package spec

import (
	"errors"
)

var (
	// ErrRequired is returned when a mandatory constructor or parse
	// argument is missing.
	ErrRequired = errors.New("argument required")

	// ErrInvalid is returned when an argument is present but
	// semantically wrong: a malformed grammar fragment, an
	// unresolvable dimension name, or a grouping without levels.
	ErrInvalid = errors.New("invalid argument")
)
