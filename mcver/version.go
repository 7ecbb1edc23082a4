// Package mcver lists the server releases that version-gated features are
// described against. It does not detect the running version; callers pass
// the version they target.
package mcver

import (
	"fmt"
	"strings"
)

// Version is a server release. Versions are ordered: a later release
// compares greater than an earlier one.
type Version int

const (
	// Unknown is the zero Version, used where no version applies.
	Unknown Version = iota
	V1_8_R3
	V1_9_R1
	V1_9_R2
	V1_10_R1
	V1_11_R1
	V1_12_R1
	V1_13_R1
	V1_13_R2
	V1_14_R1
	V1_15_R1
	V1_16_R1
	V1_16_R2
	V1_16_R3
	V1_17
	V1_18
	V1_19
	V1_19_4
	V1_20

	versionCount
)

var names = [versionCount]string{
	Unknown:  "unknown",
	V1_8_R3:  "v1_8_R3",
	V1_9_R1:  "v1_9_R1",
	V1_9_R2:  "v1_9_R2",
	V1_10_R1: "v1_10_R1",
	V1_11_R1: "v1_11_R1",
	V1_12_R1: "v1_12_R1",
	V1_13_R1: "v1_13_R1",
	V1_13_R2: "v1_13_R2",
	V1_14_R1: "v1_14_R1",
	V1_15_R1: "v1_15_R1",
	V1_16_R1: "v1_16_R1",
	V1_16_R2: "v1_16_R2",
	V1_16_R3: "v1_16_R3",
	V1_17:    "v1_17",
	V1_18:    "v1_18",
	V1_19:    "v1_19",
	V1_19_4:  "v1_19_4",
	V1_20:    "v1_20",
}

// String returns the release name, for example "v1_13_R1".
func (v Version) String() string {
	if v < 0 || v >= versionCount {
		return names[Unknown]
	}
	return names[v]
}

// Known reports whether v is a listed release.
func (v Version) Known() bool {
	return v > Unknown && v < versionCount
}

// AtLeast reports whether v is other or a later release.
func (v Version) AtLeast(other Version) bool {
	return v >= other
}

// AtMost reports whether v is other or an earlier release.
func (v Version) AtMost(other Version) bool {
	return v <= other
}

// Parse returns the Version named s. The leading "v" is optional and dots
// may be used instead of underscores, so "1.19.4" and "v1_19_4" are equal.
func Parse(s string) (Version, error) {
	norm := strings.ReplaceAll(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "v"), ".", "_")
	for v := V1_8_R3; v < versionCount; v++ {
		if strings.EqualFold(names[v][1:], norm) {
			return v, nil
		}
	}
	return Unknown, fmt.Errorf("mcver: unknown version %q", s)
}

// All returns every known release, oldest first.
func All() []Version {
	out := make([]Version, 0, versionCount-1)
	for v := V1_8_R3; v < versionCount; v++ {
		out = append(out, v)
	}
	return out
}

// Latest returns the newest known release.
func Latest() Version {
	return versionCount - 1
}
