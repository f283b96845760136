// SPDX-License-Identifier: MIT
// Package catalog: sentinel error set.
// Numeric domain problems (bad parameter values, x outside the support) are
// never errors here: they surface as NaN exactly as in package dist. Errors
// are reserved for lookups and call shapes.

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknown is returned by Lookup for a name not in the catalog.
	ErrUnknown = errors.New("catalog: unknown function")

	// ErrArity is returned when the number of parameters does not match Entry.Params.
	ErrArity = errors.New("catalog: wrong number of parameters")

	// ErrNotDistribution is returned by Entry.Distribution for kernel entries.
	ErrNotDistribution = errors.New("catalog: entry is not a distribution")

	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("catalog: unknown kind")
)

// catalogErrorf tags err with the entry name.
func catalogErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}
