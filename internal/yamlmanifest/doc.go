// Package yamlmanifest reads build manifests written in YAML. The document
// mirrors the HCL layout with camelCase keys; scalar fields are decoded as
// yaml.Node values so their tags and line numbers are available for
// validation.
package yamlmanifest
