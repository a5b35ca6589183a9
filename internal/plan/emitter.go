package plan

import (
	"context"
	"fmt"

	"github.com/specialistvlad/buildplan/internal/ctxlog"
	"github.com/specialistvlad/buildplan/internal/manifest"
)

// Emit validates m and projects it into a BuildPlan. It fails with
// manifest.ErrInvalidDependencySpec when a dependency has no name, an
// unresolvable version or is declared twice in the same configuration, and
// with manifest.ErrMalformedManifest when the SDK levels are inconsistent.
// m is never modified.
func Emit(ctx context.Context, m *manifest.BuildManifest) (*BuildPlan, error) {
	if m == nil {
		return nil, manifest.Malformedf(manifest.Pos{}, "", "manifest is nil")
	}
	_, logger := ctxlog.With(ctx, "application_id", m.ApplicationID)
	logger.Debug("Plan emitter started.", "dependencies", len(m.Dependencies))

	if err := manifest.CheckSDK(m); err != nil {
		return nil, err
	}

	deps, err := emitDependencies(m.Dependencies)
	if err != nil {
		return nil, err
	}

	buildTypes := make([]BuildType, len(m.BuildTypes))
	for i, bt := range m.BuildTypes {
		buildTypes[i] = BuildType{
			Name:                 bt.Name,
			MinifyEnabled:        bt.MinifyEnabled,
			DefaultProguardFiles: append([]string{}, bt.DefaultProguardFiles...),
			ProguardFiles:        append([]string{}, bt.ProguardFiles...),
		}
	}

	namespace := m.Namespace
	if namespace == "" {
		namespace = m.ApplicationID
	}

	p := &BuildPlan{
		SchemaVersion: SchemaVersion,
		ApplicationID: m.ApplicationID,
		Namespace:     namespace,
		SDK:           SDK{Min: m.SDK.Min, Target: m.SDK.Target, Compile: m.SDK.Compile},
		VersionCode:   m.VersionCode,
		VersionName:   m.VersionName,
		MinifyEnabled: m.MinifyEnabled,
		JVMTarget:     m.JVMTarget,
		Plugins:       m.PluginSet(),
		BuildTypes:    buildTypes,
		Dependencies:  deps,
	}
	logger.Debug("Plan emitted.", "dependencies", len(p.Dependencies), "plugins", len(p.Plugins))
	return p, nil
}

// emitDependencies keeps declaration order and rejects entries the packager
// could not resolve.
func emitDependencies(in []manifest.Dependency) ([]Dependency, error) {
	out := make([]Dependency, 0, len(in))
	seen := make(map[string]manifest.Pos, len(in))
	for i, d := range in {
		field := fmt.Sprintf("dependencies[%d]", i)
		if d.Name == "" {
			return nil, manifest.InvalidDependencyf(d.Pos, field, "name is empty")
		}
		field = fmt.Sprintf("%s (%s)", field, d.Name)
		if reason := checkVersion(d.Version); reason != "" {
			return nil, manifest.InvalidDependencyf(d.Pos, field, "%s", reason)
		}
		if prev, dup := seen[d.Key()]; dup {
			msg := "declared more than once"
			if where := prev.String(); where != "" {
				msg += ", first at " + where
			}
			return nil, manifest.InvalidDependencyf(d.Pos, field, "%s", msg)
		}
		seen[d.Key()] = d.Pos

		conf := d.Configuration
		if conf == "" {
			conf = manifest.Implementation
		}
		out = append(out, Dependency{
			Configuration: string(conf),
			Name:          d.Name,
			Version:       d.Version,
			Classifier:    d.Classifier,
		})
	}
	return out, nil
}
