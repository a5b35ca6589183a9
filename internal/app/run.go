package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/buildplan/internal/ctxlog"
	"github.com/specialistvlad/buildplan/internal/plan"
)

// Plan loads the manifest and emits its build plan.
func (a *App) Plan(ctx context.Context) (*plan.BuildPlan, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	m, err := a.LoadManifest(ctx)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Manifest loaded.", "path", m.Source, "application_id", m.ApplicationID, "dependencies", len(m.Dependencies))

	p, err := plan.Emit(ctx, m)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Run executes the main application logic: read, emit, encode, write.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	p, err := a.Plan(ctx)
	if err != nil {
		return err
	}

	digest, err := plan.Digest(p)
	if err != nil {
		return err
	}

	var out []byte
	if a.config.DigestOnly {
		out = []byte(digest + "\n")
	} else {
		out, err = plan.Encode(p, a.config.Format)
		if err != nil {
			return err
		}
	}

	if a.config.OutputPath != "" {
		if err := os.WriteFile(a.config.OutputPath, out, 0o644); err != nil {
			return fmt.Errorf("failed to write plan to %s: %w", a.config.OutputPath, err)
		}
	} else if _, err := a.outW.Write(out); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}

	a.logger.Info("Build plan emitted.", "format", a.config.Format, "digest", digest, "dependencies", len(p.Dependencies))
	a.logger.Debug("App.Run method finished.")
	return nil
}
