package manifest

import (
	"strings"
	"unicode"
)

// Check verifies the structural invariants of a fully read manifest: the
// identity is present and well formed, and minSdk <= targetSdk <= compileSdk.
// Readers call it after populating every field.
func Check(m *BuildManifest) error {
	pos := Pos{Filename: m.Source}
	if m.ApplicationID == "" {
		return Malformedf(pos, "android.defaultConfig.applicationId", "required field is missing")
	}
	if !isPackageName(m.ApplicationID) {
		return Malformedf(pos, "android.defaultConfig.applicationId", "%q is not a valid package name", m.ApplicationID)
	}
	if m.Namespace != "" && !isPackageName(m.Namespace) {
		return Malformedf(pos, "android.namespace", "%q is not a valid package name", m.Namespace)
	}
	if m.VersionCode < 0 {
		return Malformedf(pos, "android.defaultConfig.versionCode", "must not be negative, got %d", m.VersionCode)
	}
	seen := make(map[string]struct{}, len(m.BuildTypes))
	for _, bt := range m.BuildTypes {
		if _, dup := seen[bt.Name]; dup {
			return Malformedf(pos, "android.buildTypes", "build type %q declared more than once", bt.Name)
		}
		seen[bt.Name] = struct{}{}
	}
	return CheckSDK(m)
}

// CheckSDK enforces positive API levels in non-decreasing order.
func CheckSDK(m *BuildManifest) error {
	pos := Pos{Filename: m.Source}
	levels := []struct {
		field string
		value int
	}{
		{"android.defaultConfig.minSdk", m.SDK.Min},
		{"android.defaultConfig.targetSdk", m.SDK.Target},
		{"android.compileSdk", m.SDK.Compile},
	}
	for _, l := range levels {
		if l.value < 1 {
			return Malformedf(pos, l.field, "API level must be a positive integer, got %d", l.value)
		}
	}
	if m.SDK.Min > m.SDK.Target {
		return Malformedf(pos, "android.defaultConfig.minSdk", "minSdk %d exceeds targetSdk %d", m.SDK.Min, m.SDK.Target)
	}
	if m.SDK.Target > m.SDK.Compile {
		return Malformedf(pos, "android.defaultConfig.targetSdk", "targetSdk %d exceeds compileSdk %d", m.SDK.Target, m.SDK.Compile)
	}
	return nil
}

// isPackageName reports whether s is a dotted Java package name with at
// least two segments, each starting with a letter.
func isPackageName(s string) bool {
	segments := strings.Split(s, ".")
	if len(segments) < 2 {
		return false
	}
	for _, seg := range segments {
		if seg == "" {
			return false
		}
		for i, r := range seg {
			switch {
			case unicode.IsLetter(r):
			case r == '_' || unicode.IsDigit(r):
				if i == 0 && r != '_' {
					return false
				}
			default:
				return false
			}
		}
	}
	return true
}
