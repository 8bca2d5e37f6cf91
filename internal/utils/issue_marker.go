package utils

import (
	"regexp"
)

// issueMarkerRegex matches an uppercase ticket prefix directly followed by digits,
// optionally separated by a single hyphen or underscore.
var issueMarkerRegex = regexp.MustCompile(`([A-Z]+)[-_]?([0-9]+)`)

// FindIssueMarker extracts the leftmost issue marker from a branch name and
// normalizes it to PREFIX-NUMBER. "john_SRE12-find-things" yields "SRE-12".
func FindIssueMarker(branchName string) (string, bool) {
	m := issueMarkerRegex.FindStringSubmatch(branchName)
	if m == nil {
		return "", false
	}
	return m[1] + "-" + m[2], true
}
