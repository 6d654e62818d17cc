package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/compsman/internal"
	"github.com/starford/compsman/internal/comps"
	"github.com/starford/compsman/internal/validate"
	pkgconfig "github.com/starford/compsman/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	configPath := cmd.String("config")
	if cmd.IsSet("config") {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	} else if err := pkgconfig.LoadIfExists(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg), internal.WithRequest(req)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

// buildRequest converts parsed flags into the immutable run request.
func buildRequest(cmd *cli.Command) (*internal.Request, error) {
	load := append([]string(nil), cmd.StringSlice("load")...)
	save := append([]string(nil), cmd.StringSlice("save")...)

	// --merge is a shorthand: load the file first, save to it last.
	if merge := cmd.String("merge"); merge != "" {
		load = append([]string{merge}, load...)
		save = append(save, merge)
	}

	req := &internal.Request{
		Load:        load,
		Save:        save,
		Print:       cmd.Bool("print"),
		ID:          cmd.String("id"),
		Name:        cmd.String("name"),
		Description: cmd.String("description"),
		Remove:      cmd.Bool("remove"),
	}

	if cmd.IsSet("display-order") {
		order := int(cmd.Int("display-order"))
		req.DisplayOrder = &order
	}
	if cmd.IsSet("user-visible") {
		visible := true
		req.UserVisible = &visible
	}
	if cmd.IsSet("not-user-visible") {
		visible := false
		req.UserVisible = &visible
	}

	var err error
	if req.TranslatedNames, err = translations(cmd.StringSlice("translated-name")); err != nil {
		return nil, err
	}
	if req.TranslatedDescriptions, err = translations(cmd.StringSlice("translated-description")); err != nil {
		return nil, err
	}
	return req, nil
}

func translations(raw []string) ([]comps.Translation, error) {
	var out []comps.Translation
	for _, r := range raw {
		lang, text, err := validate.Translation(r)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", r, err)
		}
		out = append(out, comps.Translation{Lang: lang, Text: text})
	}
	return out, nil
}

// translationValidator checks every raw lang:text value as it is parsed.
func translationValidator(vals []string) error {
	for _, v := range vals {
		if _, _, err := validate.Translation(v); err != nil {
			return fmt.Errorf("%q: %w", v, err)
		}
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "compsman",
		Usage:  "Create and edit comps.xml package-group metadata files",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "compsman.yaml",
				Value:       "compsman.yaml",
				Sources:     cli.EnvVars("COMPSMAN_CONFIG_FILE"),
			},
			&cli.StringSliceFlag{
				Name:  "load",
				Usage: "load groups metadata from `<COMPS.XML>`",
			},
			&cli.StringSliceFlag{
				Name:  "save",
				Usage: "save groups metadata to `<COMPS.XML>`",
			},
			&cli.StringFlag{
				Name:  "merge",
				Usage: "load and save groups metadata to `<COMPS.XML>`",
			},
			&cli.BoolFlag{
				Name:  "print",
				Usage: "print the result metadata to stdout",
			},
			&cli.StringFlag{
				Name:      "id",
				Usage:     "group id",
				Validator: validate.GroupID,
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "group name",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "group description",
			},
			&cli.IntFlag{
				Name:  "display-order",
				Usage: "sort order override",
			},
			&cli.StringSliceFlag{
				Name:      "translated-name",
				Usage:     "translated name for the group (`LANG:TEXT`)",
				Validator: translationValidator,
			},
			&cli.StringSliceFlag{
				Name:      "translated-description",
				Usage:     "translated description for the group (`LANG:TEXT`)",
				Validator: translationValidator,
			},
			&cli.BoolFlag{
				Name:  "remove",
				Usage: "remove packages from group instead of adding them",
			},
		},
		MutuallyExclusiveFlags: []cli.MutuallyExclusiveFlags{
			{
				Flags: [][]cli.Flag{
					{&cli.BoolFlag{
						Name:  "user-visible",
						Usage: "make the group user visible (default)",
					}},
					{&cli.BoolFlag{
						Name:  "not-user-visible",
						Usage: "make the group user invisible",
					}},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
