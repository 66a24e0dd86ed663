// Package jvm defines the class-file format versions understood by the
// builder and the feature gates the rule engine checks against.
package jvm

import "fmt"

// Version is a class-file major version number.
type Version uint16

// Supported class-file versions.
const (
	V1_0 Version = 45 + iota
	V1_2
	V1_3
	V1_4
	V5
	V6
	V7
	V8
	V9
	V10
	V11
	V12
	V13
	V14
	V15
	V16
	V17
	V18
	V19
	V20
	V21
	V22
	V23
	V24
	V25
)

// Versions at which gated features entered the format.
const (
	// VersionModules is the first version with module descriptors.
	VersionModules = V9
	// VersionRecords is the first version with record classes.
	VersionRecords = V16
	// VersionSealed is the first version with sealed classes
	// (the PermittedSubclasses attribute).
	VersionSealed = V17
)

// AtLeast reports whether v is the same as or newer than other.
func (v Version) AtLeast(other Version) bool {
	return v >= other
}

// Compare returns -1, 0, or 1 as v is older than, equal to, or newer
// than other.
func (v Version) Compare(other Version) int {
	switch {
	case v < other:
		return -1
	case v > other:
		return 1
	default:
		return 0
	}
}

// Major returns the raw major version number written to the class file.
func (v Version) Major() int {
	return int(v)
}

func (v Version) String() string {
	switch v {
	case V1_0:
		return "1.0"
	case V1_2:
		return "1.2"
	case V1_3:
		return "1.3"
	case V1_4:
		return "1.4"
	default:
		return fmt.Sprintf("%d", int(v)-44)
	}
}
