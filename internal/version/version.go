// Package version reports the cronclearer release.
package version

import (
	"runtime/debug"
	"strings"
)

const devel = "(devel)"

// Version may be set at link time with
// -ldflags "-X github.com/brandonbloom/cronclearer/internal/version.Version=v1.2.3".
var Version = ""

// String returns the linked version, then the module version from build
// info. Local and pseudo-versioned builds report "(devel)".
func String() string {
	if Version != "" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	return normalize(info.Main.Version)
}

func normalize(v string) string {
	if v == "" || v == devel || strings.Contains(v, "+dirty") || isPseudoVersion(v) {
		return devel
	}
	return v
}

// isPseudoVersion matches vX.Y.Z-yyyymmddhhmmss-abcdefabcdef and its
// pre-release variants.
func isPseudoVersion(v string) bool {
	v, _, _ = strings.Cut(v, "+")
	parts := strings.Split(v, "-")
	if len(parts) < 3 {
		return false
	}
	ts, rev := parts[len(parts)-2], parts[len(parts)-1]
	// Pre-release pseudo-versions fold the timestamp into "0.yyyymmddhhmmss".
	if i := strings.LastIndexByte(ts, '.'); i >= 0 {
		ts = ts[i+1:]
	}
	return len(ts) == 14 && only(ts, "0123456789") &&
		len(rev) >= 12 && only(rev, "0123456789abcdefABCDEF")
}

func only(s, set string) bool {
	return strings.Trim(s, set) == ""
}
