package hclmanifest

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all supported top-level blocks of a manifest file.
type fileRoot struct {
	Plugins       *pluginsBlock       `hcl:"plugins,block"`
	Android       *androidBlock       `hcl:"android,block"`
	KotlinOptions *kotlinOptionsBlock `hcl:"kotlin_options,block"`
	Dependencies  *dependenciesBlock  `hcl:"dependencies,block"`
}

type pluginsBlock struct {
	ID     []string `hcl:"id,optional"`
	Kotlin []string `hcl:"kotlin,optional"`
}

type androidBlock struct {
	Namespace     hcl.Expression      `hcl:"namespace,optional"`
	CompileSdk    hcl.Expression      `hcl:"compile_sdk,optional"`
	DefaultConfig *defaultConfigBlock `hcl:"default_config,block"`
	BuildTypes    []*buildTypeBlock   `hcl:"build_type,block"`
}

type defaultConfigBlock struct {
	ApplicationID hcl.Expression `hcl:"application_id,optional"`
	MinSdk        hcl.Expression `hcl:"min_sdk,optional"`
	TargetSdk     hcl.Expression `hcl:"target_sdk,optional"`
	VersionCode   hcl.Expression `hcl:"version_code,optional"`
	VersionName   hcl.Expression `hcl:"version_name,optional"`
}

type buildTypeBlock struct {
	Name                 string   `hcl:"name,label"`
	MinifyEnabled        *bool    `hcl:"minify_enabled,optional"`
	DefaultProguardFiles []string `hcl:"default_proguard_files,optional"`
	ProguardFiles        []string `hcl:"proguard_files,optional"`
}

type kotlinOptionsBlock struct {
	JVMTarget hcl.Expression `hcl:"jvm_target,optional"`
}

// dependenciesBlock keeps the raw body; see readDependencies.
type dependenciesBlock struct {
	Remain hcl.Body `hcl:",remain"`
}

// dependencyBlock is the long form `dependency "group:artifact" { ... }`.
type dependencyBlock struct {
	Version       hcl.Expression `hcl:"version,optional"`
	Configuration *string        `hcl:"configuration,optional"`
	Classifier    *string        `hcl:"classifier,optional"`
}
