package yamlmanifest

import (
	"github.com/specialistvlad/buildplan/internal/manifest"
	"gopkg.in/yaml.v3"
)

const (
	tagNull  = "!!null"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
)

func posOf(filename string, n *yaml.Node) manifest.Pos {
	if n == nil {
		return manifest.Pos{Filename: filename}
	}
	return manifest.Pos{Filename: filename, Line: n.Line, Column: n.Column}
}

func isUnset(n *yaml.Node) bool {
	return n == nil || n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.ShortTag() == tagNull)
}

// intNode reads a whole-number scalar. Quoted numbers are rejected.
func intNode(filename string, n *yaml.Node, field string) (int, bool, error) {
	if isUnset(n) {
		return 0, false, nil
	}
	if n.Kind != yaml.ScalarNode {
		return 0, false, manifest.Malformedf(posOf(filename, n), field, "must be a number")
	}
	switch n.ShortTag() {
	case tagInt:
	case tagFloat:
		return 0, false, manifest.Malformedf(posOf(filename, n), field, "must be a whole number, got %s", n.Value)
	default:
		return 0, false, manifest.Malformedf(posOf(filename, n), field, "must be a number, got %q", n.Value)
	}
	var v int
	if err := n.Decode(&v); err != nil {
		return 0, false, manifest.Malformedf(posOf(filename, n), field, "%s", err)
	}
	return v, true, nil
}

func requiredInt(filename string, n *yaml.Node, field string) (int, error) {
	v, ok, err := intNode(filename, n, field)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, manifest.Malformedf(posOf(filename, n), field, "required field is missing")
	}
	return v, nil
}

// stringNode reads a scalar as text. With strict set, only string-tagged
// scalars are accepted; otherwise any scalar keeps its literal spelling, so
// `versionName: 1.0` stays "1.0".
func stringNode(filename string, n *yaml.Node, field string, strict bool) (string, bool, error) {
	if isUnset(n) {
		return "", false, nil
	}
	if n.Kind != yaml.ScalarNode {
		return "", false, manifest.Malformedf(posOf(filename, n), field, "must be a string")
	}
	if strict && n.ShortTag() != tagStr {
		return "", false, manifest.Malformedf(posOf(filename, n), field, "must be a string, got %q", n.Value)
	}
	return n.Value, true, nil
}

func requiredString(filename string, n *yaml.Node, field string) (string, error) {
	s, ok, err := stringNode(filename, n, field, true)
	if err != nil {
		return "", err
	}
	if !ok || s == "" {
		return "", manifest.Malformedf(posOf(filename, n), field, "required field is missing")
	}
	return s, nil
}
