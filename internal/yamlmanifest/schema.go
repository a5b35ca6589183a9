package yamlmanifest

import "gopkg.in/yaml.v3"

type document struct {
	Plugins       *pluginsDoc       `yaml:"plugins"`
	Android       *androidDoc       `yaml:"android"`
	KotlinOptions *kotlinOptionsDoc `yaml:"kotlinOptions"`
	Dependencies  []yaml.Node       `yaml:"dependencies"`
}

type pluginsDoc struct {
	ID     []string `yaml:"id"`
	Kotlin []string `yaml:"kotlin"`
}

// Scalars are kept as nodes; a zero-Kind node means the key was absent.
type androidDoc struct {
	Namespace     yaml.Node         `yaml:"namespace"`
	CompileSdk    yaml.Node         `yaml:"compileSdk"`
	DefaultConfig *defaultConfigDoc `yaml:"defaultConfig"`
	BuildTypes    []buildTypeDoc    `yaml:"buildTypes"`
}

type defaultConfigDoc struct {
	ApplicationID yaml.Node `yaml:"applicationId"`
	MinSdk        yaml.Node `yaml:"minSdk"`
	TargetSdk     yaml.Node `yaml:"targetSdk"`
	VersionCode   yaml.Node `yaml:"versionCode"`
	VersionName   yaml.Node `yaml:"versionName"`
}

type buildTypeDoc struct {
	Name                 string   `yaml:"name"`
	MinifyEnabled        bool     `yaml:"minifyEnabled"`
	DefaultProguardFiles []string `yaml:"defaultProguardFiles"`
	ProguardFiles        []string `yaml:"proguardFiles"`
}

type kotlinOptionsDoc struct {
	JVMTarget yaml.Node `yaml:"jvmTarget"`
}
