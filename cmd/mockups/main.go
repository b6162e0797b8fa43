// Command mockups renders the four mobile-UI concept boards to PNG files
// and prints the emitted paths.
//
// Each board is a one-shot batch job: compose one scene from literal
// coordinates, export it, discard it. A failed export is fatal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/uimock/uimock"
	"github.com/uimock/uimock/scene"
	"github.com/uimock/uimock/text"
)

func main() {
	out := flag.String("out", ".", "output directory for the generated images")
	fontDir := flag.String("fonts", "", "optional directory with ttf/otf font files")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	uimock.SetLogger(logger)

	opts := []text.ProviderOption{text.WithLogger(logger)}
	if *fontDir != "" {
		opts = append(opts, text.WithDir(*fontDir))
	}
	pal := scene.DefaultPalette(text.NewProvider(opts...))

	boards := []struct {
		file  string
		build func(*scene.Palette) *scene.Scene
	}{
		{"library_folders.png", libraryFolders},
		{"visit_planner.png", visitPlanner},
		{"daily_agenda.png", dailyAgenda},
		{"team_directory.png", teamDirectory},
	}

	for _, b := range boards {
		s := b.build(pal)
		path, err := s.Export(filepath.Join(*out, b.file))
		if err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(path)
	}
}
