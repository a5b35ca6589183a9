package manifest

import (
	"sort"
	"strings"
)

// ReleaseBuildType names the build type whose minify flag becomes the
// manifest-level MinifyEnabled value.
const ReleaseBuildType = "release"

// kotlinPluginPrefix is prepended to the Kotlin plugin shorthand, so that
// kotlin("android") becomes org.jetbrains.kotlin.android.
const kotlinPluginPrefix = "org.jetbrains.kotlin."

// Configuration is the dependency configuration a library is declared in.
type Configuration string

const (
	Implementation            Configuration = "implementation"
	API                       Configuration = "api"
	CompileOnly               Configuration = "compileOnly"
	RuntimeOnly               Configuration = "runtimeOnly"
	TestImplementation        Configuration = "testImplementation"
	AndroidTestImplementation Configuration = "androidTestImplementation"
	Kapt                      Configuration = "kapt"
)

var configurations = map[Configuration]struct{}{
	Implementation:            {},
	API:                       {},
	CompileOnly:               {},
	RuntimeOnly:               {},
	TestImplementation:        {},
	AndroidTestImplementation: {},
	Kapt:                      {},
}

// ParseConfiguration maps a configuration keyword to its Configuration.
// An empty string selects Implementation.
func ParseConfiguration(s string) (Configuration, bool) {
	if s == "" {
		return Implementation, true
	}
	c := Configuration(s)
	_, ok := configurations[c]
	return c, ok
}

// Dependency is a single declared library. Name is the Maven group:artifact
// coordinate (or a bare name for local modules).
type Dependency struct {
	Configuration Configuration
	Name          string
	Version       string
	Classifier    string
	Pos           Pos
}

// Key identifies a dependency for uniqueness checks. An unset configuration
// counts as Implementation. Classifier variants of one coordinate are
// distinct entries.
func (d Dependency) Key() string {
	conf := d.Configuration
	if conf == "" {
		conf = Implementation
	}
	key := string(conf) + " " + d.Name
	if d.Classifier != "" {
		key += ":" + d.Classifier
	}
	return key
}

// BuildType is one entry of the android buildTypes block. DefaultProguardFiles
// name rule files bundled with the Android SDK; ProguardFiles are paths inside
// the project.
type BuildType struct {
	Name                 string
	MinifyEnabled        bool
	DefaultProguardFiles []string
	ProguardFiles        []string
}

// SDKLevels groups the three Android API levels of a manifest.
type SDKLevels struct {
	Min     int
	Target  int
	Compile int
}

// BuildManifest is the declarative build configuration of one application
// module. It is created once by a Reader and must not be mutated afterwards.
type BuildManifest struct {
	Source        string
	ApplicationID string
	Namespace     string
	SDK           SDKLevels
	VersionCode   int
	VersionName   string
	MinifyEnabled bool
	JVMTarget     string
	Plugins       []string
	BuildTypes    []BuildType
	Dependencies  []Dependency
}

// PluginSet returns the manifest plugins sorted and de-duplicated.
func (m *BuildManifest) PluginSet() []string {
	seen := make(map[string]struct{}, len(m.Plugins))
	out := make([]string, 0, len(m.Plugins))
	for _, p := range m.Plugins {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// KotlinPlugin expands the Kotlin plugin shorthand into a full plugin id.
func KotlinPlugin(short string) string {
	return kotlinPluginPrefix + short
}

// ParseNotation splits a group:artifact[:version[:classifier]] string.
// Strings with fewer than three segments are returned whole as the name with
// an empty version; deciding whether that is acceptable is the emitter's job.
func ParseNotation(s string) (name, version, classifier string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", "", false
	}
	parts := strings.Split(s, ":")
	if len(parts) > 4 {
		return "", "", "", false
	}
	for _, p := range parts[:min(len(parts), 2)] {
		if p == "" {
			return "", "", "", false
		}
	}
	if len(parts) < 3 {
		return s, "", "", true
	}
	name = parts[0] + ":" + parts[1]
	version = parts[2]
	if len(parts) == 4 {
		if parts[3] == "" {
			return "", "", "", false
		}
		classifier = parts[3]
	}
	return name, version, classifier, true
}
