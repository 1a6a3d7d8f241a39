package arch

import (
	"fmt"

	"cflow/internal/types"
)

// Resolve maps a target triple string (as named on the cflow CLI and in
// cflow.toml's [target].triple) to a concrete Descriptor.
func Resolve(triple string, typesIn *types.Interner) (Descriptor, error) {
	switch triple {
	case "x86_64-sysv", "x86_64", "amd64":
		return NewSysVx8664(typesIn), nil
	default:
		return nil, fmt.Errorf("unsupported target triple %q (supported: x86_64-sysv)", triple)
	}
}
