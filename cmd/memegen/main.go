// Package main provides the CLI entry point for memegen.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/memegen/pkg/adapters/logger"
	"github.com/user/memegen/pkg/adapters/osfilesystem"
	"github.com/user/memegen/pkg/config"
	"github.com/user/memegen/pkg/memegen"
	"github.com/user/memegen/pkg/orchestrator"
	"github.com/user/memegen/pkg/ports"
	"github.com/user/memegen/pkg/server"
	"github.com/user/memegen/pkg/summarizer"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "memegen",
		Usage:   l10n.T("Add top and bottom captions to images and animated GIFs"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("YAML configuration file"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   l10n.T("Save intermediate frames for debugging"),
			},
			&cli.StringFlag{
				Name:  "debug-dir",
				Usage: l10n.T("Directory for debug output"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "caption",
				Usage:     l10n.T("Caption an image file"),
				ArgsUsage: "<input>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "top",
						Aliases: []string{"t"},
						Usage:   l10n.T("Text drawn at the top of the image"),
					},
					&cli.StringFlag{
						Name:    "bottom",
						Aliases: []string{"b"},
						Usage:   l10n.T("Text drawn at the bottom of the image"),
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   l10n.T("Output file path (default: meme.<ext> next to the input)"),
					},
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   l10n.T("Overwrite the output file if it exists"),
					},
					&cli.StringFlag{
						Name:  "summary",
						Usage: l10n.T("Write a Markdown summary to this path"),
					},
				},
				Action: runCaption,
			},
			{
				Name:  "serve",
				Usage: l10n.T("Serve the upload form over HTTP"),
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: l10n.T("Address to listen on (default: :8080)"),
					},
					&cli.Int64Flag{
						Name:  "max-upload-bytes",
						Usage: l10n.T("Largest accepted upload in bytes"),
					},
				},
				Action: runServe,
			},
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Println(l10n.F("memegen version %s", version))
					return nil
				},
			},
		},
	}
}

// loadConfig reads the configuration file, if any, applies global flag
// overrides and validates the result.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.Bool("quiet") {
		cfg.LogLevel = ports.LevelQuiet.String()
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config) ports.Logger {
	level := ports.ParseLogLevel(cfg.LogLevel)
	if level == ports.LevelQuiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(level)
}

func runCaption(c *cli.Context) error {
	input := c.Args().First()
	if input == "" {
		return cli.Exit(l10n.T("An input file is required"), 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	fs := osfilesystem.New()

	filename := filepath.Base(input)
	format, err := ports.ResolveFormat(filename)
	if err != nil {
		return err
	}

	output := c.String("output")
	if output == "" {
		output = filepath.Join(filepath.Dir(input), format.OutputFilename())
	}
	if !c.Bool("force") {
		exists, err := fs.Exists(output)
		if err != nil {
			return err
		}
		if exists {
			return errors.New(l10n.F("%s already exists, use --force to overwrite", output))
		}
	}

	data, err := fs.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	orch, err := memegen.New(memegen.Options{
		Logger:     log,
		FileSystem: fs,
		Debug:      cfg.Debug,
		DebugDir:   cfg.DebugDir,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	captions := ports.Captions{Top: c.String("top"), Bottom: c.String("bottom")}

	var buf bytes.Buffer
	result, err := orch.Process(ctx, orchestrator.Request{
		Filename: filename,
		Data:     data,
		Captions: captions,
		Output:   &buf,
	})
	if err != nil {
		return err
	}

	if err := fs.WriteFile(output, buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("Output saved to %s", output)

	if path := c.String("summary"); path != "" {
		summary := summarizer.NewBuilder().
			WithInput(input, int64(len(data))).
			WithCaptions(captions.Top, captions.Bottom).
			WithOutput(summarizer.OutputInfo{
				Path:       output,
				Format:     result.Format.String(),
				FrameCount: result.FrameCount,
				Width:      result.Width,
				Height:     result.Height,
				Delay:      result.Delay,
				Size:       result.Bytes,
			}).
			Build()
		if err := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs).Write(path, summary); err != nil {
			return err
		}
		log.Info("Summary saved to %s", path)
	}

	return nil
}

func runServe(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("listen") {
		cfg.Listen = c.String("listen")
	}
	if c.IsSet("max-upload-bytes") {
		cfg.MaxUploadBytes = c.Int64("max-upload-bytes")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := newLogger(cfg)

	orch, err := memegen.New(memegen.Options{
		Logger:     log,
		FileSystem: osfilesystem.New(),
		Debug:      cfg.Debug,
		DebugDir:   cfg.DebugDir,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(orch, cfg.MaxUploadBytes, log)
	return srv.Run(ctx, server.Options{
		Addr:            cfg.Listen,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	})
}
