package hclmanifest

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/buildplan/internal/manifest"
	"github.com/specialistvlad/buildplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBytes_ReferenceManifest(t *testing.T) {
	ctx, logs := testutil.Context(t)

	m, err := NewReader().ReadBytes(ctx, []byte(testutil.DocuSignHCL), "build.hcl")
	require.NoError(t, err)

	assert.Equal(t, "build.hcl", m.Source)
	assert.Equal(t, "com.example.flutter_docusign_app", m.ApplicationID)
	assert.Equal(t, "com.example.flutter_docusign_app", m.Namespace, "namespace defaults to the application id")
	assert.Equal(t, manifest.SDKLevels{Min: 21, Target: 33, Compile: 33}, m.SDK)
	assert.Equal(t, 1, m.VersionCode)
	assert.Equal(t, "1.0", m.VersionName)
	assert.False(t, m.MinifyEnabled)
	assert.Equal(t, "1.8", m.JVMTarget)
	assert.Equal(t, []string{"com.android.application", "org.jetbrains.kotlin.android"}, m.Plugins)
	require.Len(t, m.BuildTypes, 1)
	assert.Equal(t, manifest.BuildType{
		Name:                 "release",
		DefaultProguardFiles: []string{"proguard-android-optimize.txt"},
		ProguardFiles:        []string{"proguard-rules.pro"},
	}, m.BuildTypes[0])

	require.Len(t, m.Dependencies, len(testutil.DocuSignCoordinates))
	for i, d := range m.Dependencies {
		assert.Equal(t, manifest.Implementation, d.Configuration)
		assert.Equal(t, testutil.DocuSignCoordinates[i], d.Name+":"+d.Version)
		assert.Equal(t, "build.hcl", d.Pos.Filename)
		assert.Positive(t, d.Pos.Line)
	}

	assert.Contains(t, logs.String(), "HCL manifest read.")
}

func TestReadBytes_DependencyOrderAcrossForms(t *testing.T) {
	ctx, _ := testutil.Context(t)
	src := minimalAndroid + `
dependencies {
  api = ["g:first:1.0"]
  dependency "g:second" {
    version       = "2.0"
    configuration = "testImplementation"
    classifier    = "tests"
  }
  implementation = ["g:third:3.0", "g:fourth:4.0:sources"]
}
`
	m, err := NewReader().ReadBytes(ctx, []byte(src), "build.hcl")
	require.NoError(t, err)

	require.Len(t, m.Dependencies, 4)
	assert.Equal(t, manifest.Dependency{Configuration: manifest.API, Name: "g:first", Version: "1.0", Pos: m.Dependencies[0].Pos}, m.Dependencies[0])
	assert.Equal(t, manifest.Dependency{Configuration: manifest.TestImplementation, Name: "g:second", Version: "2.0", Classifier: "tests", Pos: m.Dependencies[1].Pos}, m.Dependencies[1])
	assert.Equal(t, "g:third", m.Dependencies[2].Name)
	assert.Equal(t, "g:fourth", m.Dependencies[3].Name)
	assert.Equal(t, "sources", m.Dependencies[3].Classifier)
}

func TestReadBytes_MissingVersionIsLeftToEmitter(t *testing.T) {
	ctx, _ := testutil.Context(t)
	src := minimalAndroid + `
dependencies {
  dependency "signature-pad" {}
}
`
	m, err := NewReader().ReadBytes(ctx, []byte(src), "build.hcl")
	require.NoError(t, err)
	require.Len(t, m.Dependencies, 1)
	assert.Equal(t, "signature-pad", m.Dependencies[0].Name)
	assert.Empty(t, m.Dependencies[0].Version)
}

func TestReadBytes_OptionalFields(t *testing.T) {
	ctx, _ := testutil.Context(t)
	src := `
android {
  namespace   = "com.example.lib"
  compile_sdk = 34
  default_config {
    application_id = "com.example.app"
    min_sdk        = 24
    target_sdk     = 34
  }
  build_type "debug" {}
  build_type "release" {
    minify_enabled = true
  }
}
kotlin_options {
  jvm_target = 17
}
`
	m, err := NewReader().ReadBytes(ctx, []byte(src), "build.hcl")
	require.NoError(t, err)

	assert.Equal(t, "com.example.lib", m.Namespace)
	assert.Equal(t, 0, m.VersionCode)
	assert.Empty(t, m.VersionName)
	assert.Equal(t, "17", m.JVMTarget, "numeric jvm targets are converted to strings")
	assert.True(t, m.MinifyEnabled, "minify follows the release build type")
	assert.Empty(t, m.Plugins)
	assert.Empty(t, m.Dependencies)
	require.Len(t, m.BuildTypes, 2)
	assert.Equal(t, "debug", m.BuildTypes[0].Name)
}

func TestReadBytes_Malformed(t *testing.T) {
	testCases := []struct {
		name  string
		src   string
		field string
		line  int
	}{
		{
			name:  "missing application id",
			src:   "android {\n  compile_sdk = 33\n  default_config {\n    min_sdk = 21\n    target_sdk = 33\n  }\n}\n",
			field: "android.default_config.application_id",
		},
		{
			name:  "non-numeric sdk level",
			src:   "android {\n  compile_sdk = \"33\"\n  default_config {\n    application_id = \"com.example.app\"\n    min_sdk = 21\n    target_sdk = 33\n  }\n}\n",
			field: "android.compile_sdk",
			line:  2,
		},
		{
			name:  "fractional sdk level",
			src:   "android {\n  compile_sdk = 33\n  default_config {\n    application_id = \"com.example.app\"\n    min_sdk = 21.5\n    target_sdk = 33\n  }\n}\n",
			field: "android.default_config.min_sdk",
			line:  5,
		},
		{
			name:  "missing target sdk",
			src:   "android {\n  compile_sdk = 33\n  default_config {\n    application_id = \"com.example.app\"\n    min_sdk = 21\n  }\n}\n",
			field: "android.default_config.target_sdk",
		},
		{
			name:  "inverted sdk levels",
			src:   "android {\n  compile_sdk = 30\n  default_config {\n    application_id = \"com.example.app\"\n    min_sdk = 21\n    target_sdk = 33\n  }\n}\n",
			field: "android.defaultConfig.targetSdk",
		},
		{
			name:  "missing android block",
			src:   "kotlin_options {\n  jvm_target = \"1.8\"\n}\n",
			field: "android",
		},
		{
			name:  "missing default config",
			src:   "android {\n  compile_sdk = 33\n}\n",
			field: "android.default_config",
		},
		{
			name: "syntax error",
			src:  "android {\n  compile_sdk = \n",
		},
		{
			name: "unsupported top-level block",
			src:  minimalAndroid + "repositories {}\n",
		},
		{
			name:  "unknown configuration",
			src:   minimalAndroid + "dependencies {\n  compile = [\"g:a:1\"]\n}\n",
			field: "dependencies.compile",
		},
		{
			name:  "malformed notation",
			src:   minimalAndroid + "dependencies {\n  implementation = [\"g::1\"]\n}\n",
			field: "dependencies.implementation[0]",
		},
		{
			name:  "non-list dependency attribute",
			src:   minimalAndroid + "dependencies {\n  implementation = \"g:a:1\"\n}\n",
			field: "dependencies.implementation",
		},
		{
			name:  "unsupported dependency block",
			src:   minimalAndroid + "dependencies {\n  platform \"g:bom\" {}\n}\n",
			field: "dependencies",
		},
		{
			name:  "numeric dependency version",
			src:   minimalAndroid + "dependencies {\n  dependency \"g:a\" {\n    version = 1\n  }\n}\n",
			field: "dependencies.dependency.g:a.version",
		},
		{
			name:  "boolean version name",
			src:   strings.Replace(minimalAndroid, "target_sdk     = 33\n", "target_sdk     = 33\n    version_name   = true\n", 1),
			field: "android.default_config.version_name",
		},
		{
			name:  "variable reference",
			src:   "android {\n  compile_sdk = var.sdk\n  default_config {\n    application_id = \"com.example.app\"\n    min_sdk = 21\n    target_sdk = 33\n  }\n}\n",
			field: "android.compile_sdk",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.Context(t)

			_, err := NewReader().ReadBytes(ctx, []byte(tc.src), "build.hcl")
			require.Error(t, err)
			require.True(t, errors.Is(err, manifest.ErrMalformedManifest), "got %v", err)

			var mErr *manifest.Error
			require.True(t, errors.As(err, &mErr))
			if tc.field != "" {
				assert.Equal(t, tc.field, mErr.Field)
			}
			if tc.line != 0 {
				assert.Equal(t, tc.line, mErr.Pos.Line)
			}
		})
	}
}

func TestReadBytes_NumericLiteralsKeepSpelling(t *testing.T) {
	ctx, _ := testutil.Context(t)
	src := strings.Replace(minimalAndroid, "target_sdk     = 33\n", "target_sdk     = 33\n    version_name   = 1.10\n", 1) +
		"kotlin_options {\n  jvm_target = 17\n}\n"

	m, err := NewReader().ReadBytes(ctx, []byte(src), "build.hcl")
	require.NoError(t, err)
	assert.Equal(t, "1.10", m.VersionName)
	assert.Equal(t, "17", m.JVMTarget)
}

func TestRead_File(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := testutil.WriteFiles(t, map[string]string{"app/build.hcl": testutil.DocuSignHCL})
	path := filepath.Join(dir, "app", "build.hcl")

	m, err := NewReader().Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, m.Source)

	_, err = NewReader().Read(ctx, filepath.Join(dir, "missing.hcl"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, manifest.ErrMalformedManifest), "i/o failures are not manifest errors")
}

const minimalAndroid = `
android {
  compile_sdk = 33
  default_config {
    application_id = "com.example.app"
    min_sdk        = 21
    target_sdk     = 33
  }
}
`
