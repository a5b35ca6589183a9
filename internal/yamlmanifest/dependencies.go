package yamlmanifest

import (
	"fmt"

	"github.com/specialistvlad/buildplan/internal/manifest"
	"gopkg.in/yaml.v3"
)

var dependencyKeys = map[string]struct{}{
	"notation":      {},
	"name":          {},
	"version":       {},
	"configuration": {},
	"classifier":    {},
}

// readDependencies converts the dependencies sequence. Each entry is either a
// plain notation string declared as implementation, or a mapping with
// `notation` or `name`/`version` plus optional `configuration` and
// `classifier`.
func readDependencies(filename string, nodes []yaml.Node) ([]manifest.Dependency, error) {
	deps := make([]manifest.Dependency, 0, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		field := fmt.Sprintf("dependencies[%d]", i)
		var (
			dep manifest.Dependency
			err error
		)
		switch n.Kind {
		case yaml.ScalarNode:
			dep, err = fromNotation(filename, n, field, manifest.Implementation)
		case yaml.MappingNode:
			dep, err = fromMapping(filename, n, field)
		default:
			err = manifest.Malformedf(posOf(filename, n), field, "must be a notation string or a mapping")
		}
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

func fromNotation(filename string, n *yaml.Node, field string, conf manifest.Configuration) (manifest.Dependency, error) {
	notation, err := requiredString(filename, n, field)
	if err != nil {
		return manifest.Dependency{}, err
	}
	name, version, classifier, ok := manifest.ParseNotation(notation)
	if !ok {
		return manifest.Dependency{}, manifest.Malformedf(posOf(filename, n), field, "%q is not a group:artifact[:version[:classifier]] notation", notation)
	}
	return manifest.Dependency{
		Configuration: conf,
		Name:          name,
		Version:       version,
		Classifier:    classifier,
		Pos:           posOf(filename, n),
	}, nil
}

func fromMapping(filename string, n *yaml.Node, field string) (manifest.Dependency, error) {
	values := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if _, known := dependencyKeys[key.Value]; !known {
			return manifest.Dependency{}, manifest.Malformedf(posOf(filename, key), field, "unknown key %q", key.Value)
		}
		if _, dup := values[key.Value]; dup {
			return manifest.Dependency{}, manifest.Malformedf(posOf(filename, key), field, "key %q declared more than once", key.Value)
		}
		values[key.Value] = val
	}

	confName, _, err := stringNode(filename, values["configuration"], field+".configuration", true)
	if err != nil {
		return manifest.Dependency{}, err
	}
	conf, known := manifest.ParseConfiguration(confName)
	if !known {
		return manifest.Dependency{}, manifest.Malformedf(posOf(filename, values["configuration"]), field+".configuration", "unknown dependency configuration %q", confName)
	}

	notation, hasNotation := values["notation"]
	nameNode, hasName := values["name"]
	switch {
	case hasNotation && hasName:
		return manifest.Dependency{}, manifest.Malformedf(posOf(filename, n), field, "notation and name are mutually exclusive")
	case hasNotation:
		if _, clash := values["version"]; clash {
			return manifest.Dependency{}, manifest.Malformedf(posOf(filename, n), field, "version must be part of the notation")
		}
		dep, err := fromNotation(filename, notation, field+".notation", conf)
		if err != nil {
			return manifest.Dependency{}, err
		}
		if dep.Classifier == "" {
			dep.Classifier, _, err = stringNode(filename, values["classifier"], field+".classifier", false)
		}
		return dep, err
	case !hasName:
		return manifest.Dependency{}, manifest.Malformedf(posOf(filename, n), field, "one of notation or name is required")
	}

	name, err := requiredString(filename, nameNode, field+".name")
	if err != nil {
		return manifest.Dependency{}, err
	}
	// A missing version is left empty; the emitter rejects it.
	version, _, err := stringNode(filename, values["version"], field+".version", false)
	if err != nil {
		return manifest.Dependency{}, err
	}
	classifier, _, err := stringNode(filename, values["classifier"], field+".classifier", false)
	if err != nil {
		return manifest.Dependency{}, err
	}
	return manifest.Dependency{
		Configuration: conf,
		Name:          name,
		Version:       version,
		Classifier:    classifier,
		Pos:           posOf(filename, n),
	}, nil
}
