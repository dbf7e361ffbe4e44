// Package jvm models the JVM-facing string formats the matcher consumes:
// class-name forms and method descriptors.
//
// Two class-name conventions coexist in the bytecode ecosystem: the
// canonical dot-separated form (java.util.ArrayList) used by source-level
// tooling, and the internal slash-separated form (java/util/ArrayList)
// used by class files and instrumentation agents. Matchers compare names
// verbatim, so callers must convert explicitly at the boundary with
// InternalName or CanonicalName before building or querying a matcher.
package jvm

import "strings"

// ConstructorName is the sentinel method name the JVM assigns to
// instance constructors.
const ConstructorName = "<init>"

// StaticInitializerName is the sentinel method name for class
// initializers.
const StaticInitializerName = "<clinit>"

// InternalName converts a canonical dot-separated class name to the
// internal slash-separated form. Names already in internal form pass
// through unchanged.
func InternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// CanonicalName converts an internal slash-separated class name to the
// canonical dot-separated form. Inverse of InternalName for well-formed
// names.
func CanonicalName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// IsInternalName reports whether name uses the slash-separated internal
// convention. A name with no package qualifier satisfies both
// conventions and reports true.
func IsInternalName(name string) bool {
	return !strings.Contains(name, ".")
}
