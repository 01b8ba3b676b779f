package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/catalog"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/config"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/enka"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/input"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/logger"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/mark"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/output"
	"github.com/genshinsim/gcsim/apps/artifact_mark/internal/profile"

	"golang.org/x/sync/errgroup"
)

// Exit code for unreadable or invalid input files.
const codeBadInput = 2

// Run scores every selected character, prints the report to stdout and logs
// to stderr.
func Run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	ctx = logger.WithRunID(ctx, logger.NewRunID())
	log := logger.FromContext(ctx, logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, stderr))

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return ExitWithError(codeBadInput, err)
	}
	profiles, err := profile.Load(cfg.ProfilesPath)
	if err != nil {
		return ExitWithError(codeBadInput, err)
	}

	chars, err := loadCharacters(cfg, profiles, log)
	if err != nil {
		return ExitWithError(codeBadInput, err)
	}
	chars = selectCharacters(chars, cfg.Chars, log)
	log.Debug("scoring", "characters", len(chars), "workers", cfg.Workers)

	reports, err := scoreAll(ctx, cat, profiles, chars, cfg.Workers)
	if err != nil {
		return err
	}
	for _, r := range reports {
		if r.Err != nil {
			log.Warn("character not scored", "character", r.Character, "err", r.Err)
			continue
		}
		for _, a := range r.Artifacts {
			if a.Err != nil {
				log.Warn("artifact ungraded", "character", r.Character, "slot", a.Slot.String(), "err", a.Err)
			}
		}
	}

	if err := output.PrintReport(stdout, reports); err != nil {
		return fmt.Errorf("print report: %w", err)
	}

	if cfg.XLSXPath != "" {
		runID, _ := logger.RunIDFromContext(ctx)
		if err := output.ExportXLSX(cfg.XLSXPath, runID, reports); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		log.Info("wrote workbook", "path", cfg.XLSXPath, "characters", len(reports))
	}
	return nil
}

func loadCharacters(cfg config.Config, profiles *profile.Set, log *slog.Logger) ([]input.Character, error) {
	if cfg.InputPath != "" {
		return input.Load(cfg.InputPath)
	}

	snap, err := enka.LoadSnapshot(cfg.EnkaPath)
	if err != nil {
		return nil, err
	}
	var out []input.Character
	for _, av := range snap.AvatarInfoList {
		name, ok := profiles.ByEnkaID(av.AvatarID)
		if !ok {
			log.Warn("skipping enka avatar without profile", "avatar_id", av.AvatarID)
			continue
		}
		arts, warns := enka.Artifacts(av)
		for _, w := range warns {
			log.Warn("enka import", "character", name, "err", w)
		}
		out = append(out, input.Character{Name: name, Artifacts: arts})
	}
	return out, nil
}

// selectCharacters keeps the requested characters, matched case-insensitively.
// An empty filter keeps all.
func selectCharacters(chars []input.Character, want []string, log *slog.Logger) []input.Character {
	if len(want) == 0 {
		return chars
	}
	found := make(map[string]bool, len(want))
	for _, w := range want {
		found[strings.ToLower(w)] = false
	}
	var out []input.Character
	for _, c := range chars {
		key := strings.ToLower(c.Name)
		if _, ok := found[key]; ok {
			found[key] = true
			out = append(out, c)
		}
	}
	for _, w := range want {
		if !found[strings.ToLower(w)] {
			log.Warn("requested character not in input", "character", w)
		}
	}
	return out
}

// scoreAll evaluates characters on up to workers goroutines. Reports keep
// input order.
func scoreAll(ctx context.Context, cat *catalog.Catalog, profiles *profile.Set, chars []input.Character, workers int) ([]output.Report, error) {
	reports := make([]output.Report, len(chars))
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ch := range chars {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = scoreCharacter(cat, profiles, ch)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func scoreCharacter(cat *catalog.Catalog, profiles *profile.Set, ch input.Character) output.Report {
	r := output.Report{Character: ch.Name}
	w, err := profiles.Weights(ch.Name)
	if err != nil {
		r.Err = err
		return r
	}
	r.Artifacts, r.Summary = mark.EvaluateSet(cat, w, ch.Artifacts)
	r.MaxMark = mark.ComputeMaxMark(cat, w)
	return r
}
