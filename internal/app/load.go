package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/buildplan/internal/ctxlog"
	"github.com/specialistvlad/buildplan/internal/fsutil"
	"github.com/specialistvlad/buildplan/internal/manifest"
)

// manifestBaseName is the file name looked up when a directory is given.
const manifestBaseName = "build"

// readerFor picks the reader registered for the file's extension.
func (a *App) readerFor(path string) (manifest.Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, r := range a.readers {
		for _, e := range r.Extensions() {
			if e == ext {
				return r, nil
			}
		}
	}
	return nil, fmt.Errorf("no manifest reader for %q files (%s)", ext, path)
}

// resolveManifest turns the configured path into a single manifest file. A
// directory must contain exactly one build.<ext> file for a known extension.
func (a *App) resolveManifest(ctx context.Context, path string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("error accessing manifest path %s: %w", path, err)
	}
	if !info.IsDir() {
		return path, nil
	}

	var names []string
	for _, r := range a.readers {
		for _, ext := range r.Extensions() {
			names = append(names, manifestBaseName+ext)
		}
	}
	found, err := fsutil.FindFilesByName(path, names...)
	if err != nil {
		return "", fmt.Errorf("failed to search %s for a manifest: %w", path, err)
	}
	logger.Debug("Searched directory for manifests.", "dir", path, "candidates", names, "found", len(found))

	switch len(found) {
	case 0:
		return "", fmt.Errorf("no manifest found in %s (looked for %s)", path, strings.Join(names, ", "))
	case 1:
		return found[0], nil
	}
	return "", fmt.Errorf("ambiguous manifest in %s: %s", path, strings.Join(found, ", "))
}

// LoadManifest resolves and reads the configured manifest.
func (a *App) LoadManifest(ctx context.Context) (*manifest.BuildManifest, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	path, err := a.resolveManifest(ctx, a.config.ManifestPath)
	if err != nil {
		return nil, err
	}
	reader, err := a.readerFor(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Reading manifest.", "path", path)
	return reader.Read(ctx, path)
}
