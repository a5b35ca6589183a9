package yamlmanifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/buildplan/internal/ctxlog"
	"github.com/specialistvlad/buildplan/internal/manifest"
	"gopkg.in/yaml.v3"
)

// Reader is the YAML implementation of manifest.Reader.
type Reader struct{}

// NewReader creates a new YAML manifest reader.
func NewReader() *Reader {
	return &Reader{}
}

// Extensions implements manifest.Reader.
func (r *Reader) Extensions() []string {
	return []string{".yaml", ".yml"}
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
	_, logger := ctxlog.With(ctx, "manifest", filename, "syntax", "yaml")
	logger.Debug("YAML manifest reader started.", "bytes", len(src))

	filePos := manifest.Pos{Filename: filename}

	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, manifest.Malformedf(filePos, "", "manifest is empty")
		}
		return nil, manifest.Malformedf(filePos, "", "%s", strings.TrimPrefix(err.Error(), "yaml: "))
	}
	logger.Debug("YAML document decoded.")

	m := &manifest.BuildManifest{Source: filename}

	if doc.Plugins != nil {
		m.Plugins = append(m.Plugins, doc.Plugins.ID...)
		for _, short := range doc.Plugins.Kotlin {
			m.Plugins = append(m.Plugins, manifest.KotlinPlugin(short))
		}
	}

	if doc.Android == nil {
		return nil, manifest.Malformedf(filePos, "android", "required block is missing")
	}
	if err := translateAndroid(filename, doc.Android, m); err != nil {
		return nil, err
	}

	if doc.KotlinOptions != nil {
		target, _, err := stringNode(filename, &doc.KotlinOptions.JVMTarget, "kotlinOptions.jvmTarget", false)
		if err != nil {
			return nil, err
		}
		m.JVMTarget = target
	}

	deps, err := readDependencies(filename, doc.Dependencies)
	if err != nil {
		return nil, err
	}
	m.Dependencies = deps

	if err := manifest.Check(m); err != nil {
		return nil, err
	}
	logger.Debug("YAML manifest read.", "application_id", m.ApplicationID, "dependencies", len(m.Dependencies))
	return m, nil
}

func translateAndroid(filename string, a *androidDoc, m *manifest.BuildManifest) error {
	var err error
	if m.SDK.Compile, err = requiredInt(filename, &a.CompileSdk, "android.compileSdk"); err != nil {
		return err
	}
	if m.Namespace, _, err = stringNode(filename, &a.Namespace, "android.namespace", true); err != nil {
		return err
	}

	dc := a.DefaultConfig
	if dc == nil {
		return manifest.Malformedf(manifest.Pos{Filename: filename}, "android.defaultConfig", "required block is missing")
	}
	if m.ApplicationID, err = requiredString(filename, &dc.ApplicationID, "android.defaultConfig.applicationId"); err != nil {
		return err
	}
	if m.SDK.Min, err = requiredInt(filename, &dc.MinSdk, "android.defaultConfig.minSdk"); err != nil {
		return err
	}
	if m.SDK.Target, err = requiredInt(filename, &dc.TargetSdk, "android.defaultConfig.targetSdk"); err != nil {
		return err
	}
	if m.VersionCode, _, err = intNode(filename, &dc.VersionCode, "android.defaultConfig.versionCode"); err != nil {
		return err
	}
	if m.VersionName, _, err = stringNode(filename, &dc.VersionName, "android.defaultConfig.versionName", false); err != nil {
		return err
	}
	if m.Namespace == "" {
		m.Namespace = m.ApplicationID
	}

	for i, bt := range a.BuildTypes {
		if bt.Name == "" {
			return manifest.Malformedf(manifest.Pos{Filename: filename}, fmt.Sprintf("android.buildTypes[%d].name", i), "required field is missing")
		}
		entry := manifest.BuildType{
			Name:                 bt.Name,
			MinifyEnabled:        bt.MinifyEnabled,
			DefaultProguardFiles: bt.DefaultProguardFiles,
			ProguardFiles:        bt.ProguardFiles,
		}
		if entry.Name == manifest.ReleaseBuildType {
			m.MinifyEnabled = entry.MinifyEnabled
		}
		m.BuildTypes = append(m.BuildTypes, entry)
	}
	return nil
}
