package hclmanifest

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/buildplan/internal/ctxlog"
	"github.com/specialistvlad/buildplan/internal/manifest"
	"github.com/zclconf/go-cty/cty"
)

// ordered pairs a dependency with its byte offset in the file.
type ordered struct {
	offset int
	dep    manifest.Dependency
}

// readDependencies walks the dependencies body in source order. Each
// attribute names a configuration and holds a list of notations; each
// `dependency` block declares one library in long form.
func readDependencies(ctx context.Context, body hcl.Body) ([]manifest.Dependency, error) {
	logger := ctxlog.FromContext(ctx)

	syntaxBody, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil, manifest.Malformedf(posOf(body.MissingItemRange()), "dependencies", "only HCL native syntax is supported")
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(syntaxBody.Attributes))
	for _, attr := range syntaxBody.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte })

	var entries []ordered
	for _, attr := range attrs {
		name := attr.Name
		field := "dependencies." + name
		conf, known := manifest.ParseConfiguration(name)
		if !known {
			return nil, manifest.Malformedf(posOf(attr.NameRange), field, "unknown dependency configuration %q", name)
		}
		exprs, diags := hcl.ExprList(attr.Expr)
		if diags.HasErrors() {
			return nil, diagError(diags, field)
		}
		for i, expr := range exprs {
			elemField := fmt.Sprintf("%s[%d]", field, i)
			notation, err := requiredString(expr, elemField)
			if err != nil {
				return nil, err
			}
			depName, version, classifier, ok := manifest.ParseNotation(notation)
			if !ok {
				return nil, manifest.Malformedf(posOf(expr.Range()), elemField, "%q is not a group:artifact[:version[:classifier]] notation", notation)
			}
			entries = append(entries, ordered{
				offset: expr.Range().Start.Byte,
				dep: manifest.Dependency{
					Configuration: conf,
					Name:          depName,
					Version:       version,
					Classifier:    classifier,
					Pos:           posOf(expr.Range()),
				},
			})
		}
	}

	for _, block := range syntaxBody.Blocks {
		if block.Type != "dependency" {
			return nil, manifest.Malformedf(posOf(block.TypeRange), "dependencies", "unsupported block type %q", block.Type)
		}
		if len(block.Labels) != 1 || block.Labels[0] == "" {
			return nil, manifest.Malformedf(posOf(block.DefRange()), "dependencies.dependency", "exactly one non-empty name label is required")
		}
		name := block.Labels[0]
		field := "dependencies.dependency." + name

		var decoded dependencyBlock
		if diags := gohcl.DecodeBody(block.Body, nil, &decoded); diags.HasErrors() {
			return nil, diagError(diags, field)
		}
		dep, err := translateDependencyBlock(name, field, block, &decoded)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ordered{offset: block.TypeRange.Start.Byte, dep: dep})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].offset < entries[j].offset })

	deps := make([]manifest.Dependency, len(entries))
	for i, e := range entries {
		deps[i] = e.dep
	}
	logger.Debug("Dependencies read.", "count", len(deps))
	return deps, nil
}

func translateDependencyBlock(name, field string, block *hclsyntax.Block, b *dependencyBlock) (manifest.Dependency, error) {
	pos := posOf(block.DefRange())
	conf := manifest.Implementation
	if b.Configuration != nil {
		c, known := manifest.ParseConfiguration(*b.Configuration)
		if !known {
			return manifest.Dependency{}, manifest.Malformedf(pos, field+".configuration", "unknown dependency configuration %q", *b.Configuration)
		}
		conf = c
	}

	// A missing version is left empty on purpose: rejecting it is the
	// emitter's decision, reported as an invalid dependency spec.
	version := ""
	val, err := evalStatic(b.Version, field+".version")
	if err != nil {
		return manifest.Dependency{}, err
	}
	if !val.IsNull() {
		if !val.Type().Equals(cty.String) {
			return manifest.Dependency{}, manifest.Malformedf(posOf(b.Version.Range()), field+".version", "must be a string, got %s", val.Type().FriendlyName())
		}
		version = val.AsString()
	}

	dep := manifest.Dependency{
		Configuration: conf,
		Name:          name,
		Version:       version,
		Pos:           pos,
	}
	if b.Classifier != nil {
		dep.Classifier = *b.Classifier
	}
	return dep, nil
}
