// lrle is a command-line front end for the terrain viewer core: it loads FDF
// height fields, builds meshes, reports camera state and exports previews.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/lrle/internal/config"
	"github.com/Faultbox/lrle/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		err = cmdInfo(cfg, args)
	case "mesh":
		err = cmdMesh(cfg, args)
	case "camera", "cam":
		err = cmdCamera(cfg, args)
	case "pick":
		err = cmdPick(cfg, args)
	case "preview", "png":
		err = cmdPreview(cfg, args)
	case "config":
		err = cmdConfig(cfg, args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lrle - terrain height-field viewer core

Usage:
  lrle [flags] <command> [options]

Commands:
  info <file.fdf>                    Show field and mesh statistics
  mesh [-n N] <file.fdf>             Show mesh summary and the first N vertices
  camera [-aspect A] [file.fdf]      Show camera state and matrices
  pick [-size WxH] <file.fdf> <x> <y> Show the terrain sample under a pixel
  preview <file.fdf> <out.png|bmp>   Export a top-down shaded image
  config [path]                      Write the effective config as YAML

Flags:
  -config <path>       Config file
  -debug               Debug logging
  -log-file <path>     Write logs to file
  -height-scale <f>    Height multiplier
  -shading <mode>      smooth or flat
  -scheme <name>       terrain, heatmap or monochrome
  -file-colors         Use colors stored in the file
  -iso                 Isometric camera preset
  -ortho               Orthographic projection

Examples:
  lrle info maps/42.fdf
  lrle -scheme heatmap -height-scale 2 preview maps/mars.fdf mars.png
  lrle -iso camera maps/42.fdf`)
}
