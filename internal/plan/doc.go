// Package plan turns a manifest.BuildManifest into a BuildPlan and renders
// plans into canonical bytes.
//
// Emit is a pure function: the same manifest always yields a plan whose
// encoding and digest are byte-identical. Dependencies keep their
// declaration order; plugins are a set and are emitted sorted.
package plan
