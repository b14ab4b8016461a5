// Package treelist is a tree list view-state engine with a Bubble Tea
// front end. The engine lives in package view and the component in package
// listview.
package treelist

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version without the leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, ok := parseRelease(v)
	return ok
}

// release is the numeric core of a SemVer string.
type release struct{ major, minor, patch int }

func parseRelease(v string) (release, bool) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return release{}, false
	}
	var r release
	for i, dst := range []*int{&r.major, &r.minor, &r.patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return release{}, false
		}
		*dst = n
	}
	return r, true
}

// Major returns the major component of a SemVer string.
func Major(v string) (int, bool) {
	r, ok := parseRelease(v)
	return r.major, ok
}

// Compatible reports whether state written by module version v can be read
// by this build: same major, and same minor while the major is 0.
func Compatible(v string) bool {
	theirs, ok := Major(v)
	if !ok {
		return false
	}
	ours, ok := Major(Version())
	if !ok || theirs != ours {
		return false
	}
	if ours > 0 {
		return true
	}
	a, _ := parseRelease(v)
	b, _ := parseRelease(Version())
	return a.minor == b.minor
}
