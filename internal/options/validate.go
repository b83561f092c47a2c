// Package options holds option validation shared by the functional-option APIs.
package options

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasdocs/oaserrors"
)

// ValidateSingleInputSource ensures exactly one input source is set.
// pkg prefixes the message, names lists the option constructors in the same
// order as sources, and sources flags which of them were used.
func ValidateSingleInputSource(pkg string, names []string, sources ...bool) error {
	var used []string
	for i, hasSource := range sources {
		if !hasSource {
			continue
		}
		if i < len(names) {
			used = append(used, names[i])
		} else {
			used = append(used, fmt.Sprintf("source #%d", i+1))
		}
	}

	switch len(used) {
	case 1:
		return nil
	case 0:
		return &oaserrors.ConfigError{
			Option:  "input",
			Message: fmt.Sprintf("%s: must specify an input source (use %s)", pkg, strings.Join(names, ", ")),
		}
	default:
		return &oaserrors.ConfigError{
			Option:  "input",
			Value:   strings.Join(used, ", "),
			Message: pkg + ": must specify exactly one input source",
		}
	}
}
