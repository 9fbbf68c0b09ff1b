package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Conceptual-Machines/tonalflow-api/internal/presets"
	"github.com/Conceptual-Machines/tonalflow-api/internal/scales"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional here, it only supplies PRESETS_FILE
	_ = godotenv.Load()

	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

// run renders one exercise to MusicXML. Options come from flags, a DSL line
// (-dsl) or a catalog preset (-preset), in that order of precedence: the
// last two replace the flag values entirely.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	defaults := scales.DefaultOptions()

	fs := flag.NewFlagSet("scalegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	key := fs.String("key", defaults.Key, "tonic, e.g. C, F#, Bb")
	mode := fs.String("mode", string(defaults.Mode), "major, minor, harmonic_minor or melodic_minor")
	rhythm := fs.String("rhythm", string(defaults.Rhythm), "long_octave, sixteenths or eighth_two_sixteenths")
	slur := fs.String("slur", string(defaults.SlurPattern), "articulation pattern, e.g. slur_two_tongue_two")
	octaves := fs.Int("octaves", defaults.Octaves, "octaves to span (1-3)")
	start := fs.Int("start", defaults.StartOctave, "starting octave (3-4)")
	dsl := fs.String("dsl", "", `scale DSL, e.g. "scale(key=Eb, rhythm=sixteenths)"`)
	preset := fs.String("preset", "", "catalog preset name")
	index := fs.Int("index", 0, "exercise within a -dsl line or -preset")
	presetsFile := fs.String("presets", os.Getenv("PRESETS_FILE"), "TOML preset catalog (embedded catalog if empty)")
	list := fs.Bool("list", false, "list catalog presets and exit")
	out := fs.String("o", "", "write MusicXML to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := scales.Options{
		Key:         *key,
		Mode:        scales.Mode(*mode),
		Rhythm:      scales.RhythmPattern(*rhythm),
		SlurPattern: scales.SlurPattern(*slur),
		Octaves:     *octaves,
		StartOctave: *start,
	}

	if *dsl != "" || *preset != "" || *list {
		parser, err := presets.NewParser()
		if err != nil {
			return err
		}

		var exercises []scales.Options
		switch {
		case *list:
			catalog, err := loadCatalog(ctx, parser, *presetsFile)
			if err != nil {
				return err
			}
			for _, p := range catalog.List() {
				fmt.Fprintf(stdout, "%-16s %s\n", p.Name, p.Description)
			}
			return nil
		case *preset != "":
			catalog, err := loadCatalog(ctx, parser, *presetsFile)
			if err != nil {
				return err
			}
			if exercises, err = catalog.Options(*preset); err != nil {
				return err
			}
		default:
			if exercises, err = parser.Parse(ctx, *dsl); err != nil {
				return err
			}
		}

		if *index < 0 || *index >= len(exercises) {
			return fmt.Errorf("index %d out of range, %d exercise(s) available", *index, len(exercises))
		}
		opts = exercises[*index]
	}

	normalized, adjusted, err := opts.Normalize()
	if err != nil {
		return err
	}
	if adjusted {
		fmt.Fprintf(stderr, "%s %s cannot be written with seven or fewer accidentals, using %s\n",
			opts.Key, opts.Mode, normalized.Mode)
	}

	ex, err := scales.Generate(normalized)
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = io.WriteString(stdout, ex.MusicXML)
		return err
	}

	if err := os.WriteFile(*out, []byte(ex.MusicXML), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	fmt.Fprintf(stderr, "✅ %s: %d measures, %s cadence -> %s\n",
		ex.Options, ex.Summary.Measures, ex.Summary.Cadence, *out)
	return nil
}

func loadCatalog(ctx context.Context, parser *presets.Parser, path string) (*presets.Catalog, error) {
	if path == "" {
		return presets.DefaultCatalog(ctx, parser)
	}
	return presets.LoadCatalog(ctx, parser, path)
}
