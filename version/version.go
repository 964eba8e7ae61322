/*package version controls the version*/
package version

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SourceVersion is the semantic version number of the source code. Config
// files written for a later version than this are rejected.
const SourceVersion = "0.2.1"

// Parse splits a semantic version string of the form major.minor.patch
// into its three components.
func Parse(s string) (major, minor, patch int, err error) {
	toks := strings.Split(s, ".")
	if len(toks) != 3 {
		return -1, -1, -1, errors.Errorf(
			"version string %q does not take the form of three "+
				"period-separated non-negative numbers", s,
		)
	}

	out := [3]int{}
	for i, tok := range toks {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return -1, -1, -1, errors.Errorf(
				"version string %q does not take the form of three "+
					"period-separated non-negative numbers", s,
			)
		}
		out[i] = n
	}

	return out[0], out[1], out[2], nil
}

// Later returns true if s1 represents a later version than s2. An error is
// returned if either is invalid.
func Later(s1, s2 string) (bool, error) {
	major1, minor1, patch1, err := Parse(s1)
	if err != nil {
		return false, err
	}
	major2, minor2, patch2, err := Parse(s2)
	if err != nil {
		return false, err
	}

	if major1 != major2 {
		return major1 > major2, nil
	}
	if minor1 != minor2 {
		return minor1 > minor2, nil
	}
	return patch1 > patch2, nil
}
