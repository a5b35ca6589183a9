package plan

import (
	"strings"
	"unicode"
)

// checkVersion reports why a version string cannot be resolved by the
// packager, or "" when it can. Prefix ranges such as `1.+` are allowed;
// a bare `+`, `latest.*` selectors and unexpanded `${...}` placeholders are
// not.
func checkVersion(v string) string {
	switch {
	case strings.TrimSpace(v) == "":
		return "version is empty"
	case strings.IndexFunc(v, unicode.IsSpace) >= 0:
		return "version contains whitespace"
	case strings.Contains(v, "${"):
		return "version contains an unresolved placeholder"
	case v == "+":
		return "a bare '+' does not pin any version"
	case strings.HasPrefix(v, "latest."):
		return "dynamic 'latest' selectors are not resolvable"
	}
	if i := strings.IndexByte(v, '+'); i >= 0 && (i != len(v)-1 || !strings.HasSuffix(v, ".+")) {
		return "'+' is only allowed as a trailing prefix range such as 1.+"
	}
	return ""
}
