package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gashok13193/DevOps-Docs/config"
	"github.com/gashok13193/DevOps-Docs/export"
	"github.com/gashok13193/DevOps-Docs/logger"
	"github.com/gashok13193/DevOps-Docs/samples"
)

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "samples":
			samplesCmd := flag.NewFlagSet("samples", flag.ExitOnError)
			samplesCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: devopsdocs samples [flags]\n\nGenerate the built-in sample decks.\n\nFlags:\n")
				samplesCmd.PrintDefaults()
			}
			out := samplesCmd.String("out", "", "output directory (default: configured output dir)")
			_ = samplesCmd.Parse(os.Args[2:])

			exitOn(runSamples(*out))
			return
		case "new":
			newCmd := flag.NewFlagSet("new", flag.ExitOnError)
			newCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: devopsdocs new [flags]\n\nBuild a deck interactively and save it.\n\nFlags:\n")
				newCmd.PrintDefaults()
			}
			out := newCmd.String("out", "", "output file (default: asked by the wizard)")
			_ = newCmd.Parse(os.Args[2:])

			exitOn(runNew(*out))
			return
		case "render":
			renderCmd := flag.NewFlagSet("render", flag.ExitOnError)
			renderCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: devopsdocs render -in deck.pptx [flags]\n\nExport one PNG per slide from an existing presentation.\n\nFlags:\n")
				renderCmd.PrintDefaults()
			}
			in := renderCmd.String("in", "", "presentation file to render")
			dir := renderCmd.String("dir", "", "output directory for slide images (default: next to the input)")
			_ = renderCmd.Parse(os.Args[2:])

			exitOn(runRender(*in, *dir))
			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: devopsdocs <command> [flags]\n\nCommands:\n  samples  Generate the built-in sample decks\n  new      Build a deck interactively\n  render   Export slide PNGs from a .pptx file\n")
	}
	flag.Parse()
	flag.Usage()
	os.Exit(2)
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// startRun loads the configuration and opens the run log.
func startRun() (config.Config, *logger.Logger, error) {
	cfg, err := config.NewService(nil).Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.NewLogger()
	if err := log.Init(cfg.LogDir); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}

func runSamples(out string) error {
	cfg, log, err := startRun()
	if err != nil {
		return err
	}
	defer log.Close()

	if out == "" {
		out = cfg.OutputDir
	}
	log.Logf("generating sample decks into %s", out)

	results, err := samples.RunAll(out)
	if err != nil {
		return err
	}

	var total int64
	for _, r := range results {
		fmt.Printf("  %-24s %s (%.1f KB)\n", r.Name, r.Path, float64(r.Size)/1024)
		log.Logf("generated %s: %s (%d bytes)", r.Name, r.Path, r.Size)
		total += r.Size
	}
	fmt.Printf("Generated %d presentations (%.1f KB) in %s\n", len(results), float64(total)/1024, out)
	return nil
}

func runRender(in, dir string) error {
	if in == "" {
		return fmt.Errorf("missing -in: a .pptx file to render")
	}

	_, log, err := startRun()
	if err != nil {
		return err
	}
	defer log.Close()

	if dir == "" {
		dir = strings.TrimSuffix(in, filepath.Ext(in)) + "_slides"
	}
	log.Logf("rendering %s into %s", in, dir)

	paths, err := export.NewImagesService().ExportPNGs(in, dir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
		log.Logf("rendered %s", p)
	}
	fmt.Printf("Rendered %d slides into %s\n", len(paths), dir)
	return nil
}
