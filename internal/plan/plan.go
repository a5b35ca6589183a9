package plan

// SchemaVersion is bumped whenever the encoded BuildPlan layout changes.
const SchemaVersion = 1

// BuildPlan is the normalized, validated projection of a manifest that an
// external packager consumes.
type BuildPlan struct {
	SchemaVersion int          `json:"schemaVersion" yaml:"schemaVersion"`
	ApplicationID string       `json:"applicationId" yaml:"applicationId"`
	Namespace     string       `json:"namespace" yaml:"namespace"`
	SDK           SDK          `json:"sdk" yaml:"sdk"`
	VersionCode   int          `json:"versionCode" yaml:"versionCode"`
	VersionName   string       `json:"versionName,omitempty" yaml:"versionName,omitempty"`
	MinifyEnabled bool         `json:"minifyEnabled" yaml:"minifyEnabled"`
	JVMTarget     string       `json:"jvmTarget,omitempty" yaml:"jvmTarget,omitempty"`
	Plugins       []string     `json:"plugins" yaml:"plugins"`
	BuildTypes    []BuildType  `json:"buildTypes" yaml:"buildTypes"`
	Dependencies  []Dependency `json:"dependencies" yaml:"dependencies"`
}

// SDK holds the emitted API levels.
type SDK struct {
	Min     int `json:"min" yaml:"min"`
	Target  int `json:"target" yaml:"target"`
	Compile int `json:"compile" yaml:"compile"`
}

// BuildType is an emitted build type.
type BuildType struct {
	Name                 string   `json:"name" yaml:"name"`
	MinifyEnabled        bool     `json:"minifyEnabled" yaml:"minifyEnabled"`
	DefaultProguardFiles []string `json:"defaultProguardFiles" yaml:"defaultProguardFiles"`
	ProguardFiles        []string `json:"proguardFiles" yaml:"proguardFiles"`
}

// Dependency is one (name, version) pair of the plan.
type Dependency struct {
	Configuration string `json:"configuration" yaml:"configuration"`
	Name          string `json:"name" yaml:"name"`
	Version       string `json:"version" yaml:"version"`
	Classifier    string `json:"classifier,omitempty" yaml:"classifier,omitempty"`
}

// Coordinate renders the dependency in group:artifact:version[:classifier] form.
func (d Dependency) Coordinate() string {
	c := d.Name + ":" + d.Version
	if d.Classifier != "" {
		c += ":" + d.Classifier
	}
	return c
}
