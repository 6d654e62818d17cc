// Package internal provides the application orchestration: load, merge,
// locate-or-create, edit, save, print.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/compsman/internal/apperr"
	"github.com/starford/compsman/internal/checksum"
	"github.com/starford/compsman/internal/comps"
	"github.com/starford/compsman/internal/storage"
	"github.com/starford/compsman/internal/validate"
)

// Run executes one groups-metadata run with the given options.
//
// Fatal errors (bad request shape, duplicate derived id, removing from a
// nonexistent group, encode failure) abort the run. Per-source load failures
// and per-destination save failures are logged as warnings and skipped.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.request == nil {
		return fmt.Errorf("request is required")
	}
	if app.config == nil {
		app.config = NewDefaultConfig()
	}
	if app.store == nil {
		app.store = storage.NewOS()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}

	// Logs go to stderr; stdout is reserved for printed metadata.
	logger := slog.New(slog.NewTextHandler(app.stderr, &slog.HandlerOptions{
		Level: app.config.App.LogLevel,
	}))

	req := app.request
	if err := req.Validate(); err != nil {
		return err
	}
	if req.EditRequested() && req.ID == "" && req.Name == "" {
		return apperr.ErrGroupRequired
	}

	collection := loadInputFiles(app, req, logger)

	if req.ID != "" || req.Name != "" {
		group, err := locateOrCreate(collection, req)
		if err != nil {
			return err
		}
		group.Apply(req.Edit())
	}

	encoded, diags, err := comps.Encode(collection, app.config.Output.EncodeOptions())
	if err != nil {
		return err
	}
	for _, d := range dedup(diags) {
		logger.Warn("encode diagnostic", slog.String("detail", d))
	}

	saveOutputFiles(app, req, logger, encoded)

	if req.Print || len(req.Save) == 0 {
		if _, err := app.stdout.Write(encoded); err != nil {
			return fmt.Errorf("print metadata: %w", err)
		}
	}

	return nil
}

// loadInputFiles parses every input source and merges the results in input
// order. A source that cannot be read or parsed is logged and skipped.
func loadInputFiles(app *application, req *Request, logger *slog.Logger) *comps.Collection {
	collection := comps.New()
	loaded := false

	for _, path := range req.Load {
		data, err := app.store.Read(path)
		if err != nil {
			logger.Warn("can't load file", slog.String("file", path), slog.String("error", err.Error()))
			continue
		}
		sub, err := comps.Parse(data)
		if err != nil {
			logger.Warn("can't load file", slog.String("file", path), slog.String("error", err.Error()))
			var perr *comps.ParseError
			if errors.As(err, &perr) {
				for _, d := range dedup(perr.Diagnostics) {
					logger.Warn(d)
				}
			}
			continue
		}
		collection.Merge(sub)
		loaded = true
	}

	if len(req.Load) > 0 && !loaded {
		logger.Debug("no input file was loaded successfully")
	}
	return collection
}

// locateOrCreate finds the requested group, or appends a new one when the
// request allows it.
func locateOrCreate(collection *comps.Collection, req *Request) (*comps.Group, error) {
	if group := collection.Find(req.ID, req.Name); group != nil {
		return group, nil
	}
	if req.Remove {
		return nil, apperr.ErrRemoveNonexistent
	}

	group := &comps.Group{}
	if req.ID != "" {
		group.ID = req.ID
		// The name defaults to the id; an explicit --name overwrites it
		// when the edit is applied.
		group.Name = req.ID
	} else {
		id, err := validate.DeriveID(req.Name)
		if err != nil {
			return nil, err
		}
		if collection.FindByID(id) != nil {
			return nil, &apperr.DuplicateDerivedIDError{ID: id, Name: req.Name}
		}
		group.ID = id
	}
	collection.Append(group)
	return group, nil
}

// saveOutputFiles writes the encoded document to every destination. A failed
// destination is logged and does not stop the remaining ones.
func saveOutputFiles(app *application, req *Request, logger *slog.Logger, encoded []byte) {
	for _, path := range req.Save {
		if err := app.store.Write(path, encoded); err != nil {
			logger.Warn("can't save file", slog.String("file", path), slog.String("error", err.Error()))
			continue
		}
		logger.Debug("saved metadata",
			slog.String("file", path),
			slog.String("checksum", checksum.Short(encoded)))
	}
}

// dedup removes repeated diagnostic lines, keeping first occurrences in order.
func dedup(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	var out []string
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}
