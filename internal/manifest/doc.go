// Package manifest defines the format-agnostic BuildManifest model, the two
// error kinds every reader and the plan emitter report, and the Reader
// interface implemented by the concrete syntax packages.
//
// A BuildManifest is produced once per load and is treated as immutable
// afterwards. Concrete readers live in separate packages (hclmanifest,
// yamlmanifest) so that the model never depends on a syntax.
package manifest
