// SPDX-License-Identifier: AGPL-3.0-only
package blog

import "regexp"

var postIDPattern = regexp.MustCompile(`^[0-9]{1,20}$`)

// ValidPostID reports whether raw is an acceptable id parameter: a sequence
// of 1 to 20 digit characters, nothing else.
func ValidPostID(raw string) bool {
	return postIDPattern.MatchString(raw)
}
