// Package hclmanifest reads build manifests written in HCL native syntax
// and translates them into the format-agnostic manifest.BuildManifest.
//
// Static blocks are decoded with gohcl. Scalar attributes are kept as
// hcl.Expression values so that missing, null and ill-typed values can be
// told apart and reported with their source range. The dependencies block is
// walked with hclsyntax directly because declaration order across different
// configuration attributes has to be preserved.
package hclmanifest
