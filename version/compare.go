// Package version tracks the running release against the published one:
// semantic comparison, cached release lookup, and the update notice.
package version

import (
	"fmt"
	"strings"
)

// Compare orders two semantic version strings, tolerating a leading "v".
// Returns 1 if a is newer than b, -1 if older, 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, err
	}

	bv, err := parseSemver(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		if av[i] != bv[i] {
			if av[i] > bv[i] {
				return 1, nil
			}
			return -1, nil
		}
	}

	return 0, nil
}

// parseSemver splits a version string into its major, minor and patch numbers.
func parseSemver(s string) (v [3]int, err error) {
	_, err = fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &v[0], &v[1], &v[2])
	if err != nil {
		err = fmt.Errorf("malformed version %q: %w", s, err)
	}
	return
}
