package hclmanifest

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/buildplan/internal/ctxlog"
	"github.com/specialistvlad/buildplan/internal/manifest"
)

// Reader is the HCL implementation of manifest.Reader.
type Reader struct{}

// NewReader creates a new HCL manifest reader.
func NewReader() *Reader {
	return &Reader{}
}

// Extensions implements manifest.Reader.
func (r *Reader) Extensions() []string {
	return []string{".hcl"}
}

// Read implements manifest.Reader.
func (r *Reader) Read(ctx context.Context, path string) (*manifest.BuildManifest, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return r.ReadBytes(ctx, src, path)
}

// ReadBytes implements manifest.Reader.
func (r *Reader) ReadBytes(ctx context.Context, src []byte, filename string) (*manifest.BuildManifest, error) {
	ctx, logger := ctxlog.With(ctx, "manifest", filename, "syntax", "hcl")
	logger.Debug("HCL manifest reader started.", "bytes", len(src))

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(diags, "")
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, diagError(diags, "")
	}
	logger.Debug("HCL body decoded.")

	m := &manifest.BuildManifest{Source: filename}
	filePos := manifest.Pos{Filename: filename}

	if root.Plugins != nil {
		m.Plugins = append(m.Plugins, root.Plugins.ID...)
		for _, short := range root.Plugins.Kotlin {
			m.Plugins = append(m.Plugins, manifest.KotlinPlugin(short))
		}
	}

	if root.Android == nil {
		return nil, manifest.Malformedf(filePos, "android", "required block is missing")
	}
	if err := translateAndroid(src, root.Android, m, filePos); err != nil {
		return nil, err
	}

	if root.KotlinOptions != nil {
		target, _, err := lenientStringAttr(src, root.KotlinOptions.JVMTarget, "kotlin_options.jvm_target")
		if err != nil {
			return nil, err
		}
		m.JVMTarget = target
	}

	if root.Dependencies != nil {
		deps, err := readDependencies(ctx, root.Dependencies.Remain)
		if err != nil {
			return nil, err
		}
		m.Dependencies = deps
	}

	if err := manifest.Check(m); err != nil {
		return nil, err
	}
	logger.Debug("HCL manifest read.", "application_id", m.ApplicationID, "dependencies", len(m.Dependencies))
	return m, nil
}

// translateAndroid copies the android block and its nested blocks into m.
func translateAndroid(src []byte, a *androidBlock, m *manifest.BuildManifest, filePos manifest.Pos) error {
	var err error
	if m.SDK.Compile, err = requiredInt(a.CompileSdk, "android.compile_sdk"); err != nil {
		return err
	}
	if m.Namespace, _, err = stringAttr(a.Namespace, "android.namespace"); err != nil {
		return err
	}

	dc := a.DefaultConfig
	if dc == nil {
		return manifest.Malformedf(filePos, "android.default_config", "required block is missing")
	}
	if m.ApplicationID, err = requiredString(dc.ApplicationID, "android.default_config.application_id"); err != nil {
		return err
	}
	if m.SDK.Min, err = requiredInt(dc.MinSdk, "android.default_config.min_sdk"); err != nil {
		return err
	}
	if m.SDK.Target, err = requiredInt(dc.TargetSdk, "android.default_config.target_sdk"); err != nil {
		return err
	}
	if m.VersionCode, _, err = intAttr(dc.VersionCode, "android.default_config.version_code"); err != nil {
		return err
	}
	if m.VersionName, _, err = lenientStringAttr(src, dc.VersionName, "android.default_config.version_name"); err != nil {
		return err
	}
	if m.Namespace == "" {
		m.Namespace = m.ApplicationID
	}

	for _, bt := range a.BuildTypes {
		entry := manifest.BuildType{Name: bt.Name, DefaultProguardFiles: bt.DefaultProguardFiles, ProguardFiles: bt.ProguardFiles}
		if bt.MinifyEnabled != nil {
			entry.MinifyEnabled = *bt.MinifyEnabled
		}
		if entry.Name == manifest.ReleaseBuildType {
			m.MinifyEnabled = entry.MinifyEnabled
		}
		m.BuildTypes = append(m.BuildTypes, entry)
	}
	return nil
}
