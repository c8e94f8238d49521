// Package memegen provides a high-level API for captioning images.
package memegen

import (
	"fmt"

	"github.com/user/memegen/pkg/adapters/filesink"
	"github.com/user/memegen/pkg/adapters/ggcaptioner"
	"github.com/user/memegen/pkg/adapters/gifcodec"
	"github.com/user/memegen/pkg/adapters/logger"
	"github.com/user/memegen/pkg/adapters/nullsink"
	"github.com/user/memegen/pkg/adapters/osfilesystem"
	"github.com/user/memegen/pkg/adapters/stillcodec"
	"github.com/user/memegen/pkg/orchestrator"
	"github.com/user/memegen/pkg/ports"
	"github.com/user/memegen/pkg/stages/caption"
	"github.com/user/memegen/pkg/stages/decode"
	"github.com/user/memegen/pkg/stages/encode"
)

// Options controls how the pipeline is assembled.
type Options struct {
	Logger     ports.Logger     // Defaults to a no-op logger
	FileSystem ports.FileSystem // Defaults to the OS filesystem

	// Debug output
	Debug    bool
	DebugDir string
}

// New wires the default adapters and stages into an Orchestrator.
// The result is safe for concurrent use.
func New(opts Options) (*orchestrator.Orchestrator, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoop()
	}
	fs := opts.FileSystem
	if fs == nil {
		fs = osfilesystem.New()
	}

	captioner, err := ggcaptioner.New()
	if err != nil {
		return nil, fmt.Errorf("create captioner: %w", err)
	}
	still := stillcodec.New()

	var sink ports.DebugSink
	if opts.Debug {
		if opts.DebugDir == "" {
			return nil, fmt.Errorf("debug directory is required")
		}
		if err := fs.MkdirAll(opts.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(opts.DebugDir, fs, still)
	} else {
		sink = nullsink.New()
	}

	return orchestrator.New(
		decode.NewStage(gifcodec.NewDecoder(), still, sink, log),
		caption.NewStage(captioner, sink, log),
		encode.NewStage(gifcodec.NewEncoder(), still, log),
		sink,
		log,
	), nil
}
