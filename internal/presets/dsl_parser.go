package presets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Conceptual-Machines/grammar-school-go/gs"
	"github.com/Conceptual-Machines/tonalflow-api/internal/logger"
	"github.com/Conceptual-Machines/tonalflow-api/internal/scales"
)

var ErrEmptyDSL = errors.New("empty DSL code")

// Parser turns scale DSL code into exercise options using Grammar School
type Parser struct {
	mu       sync.Mutex
	engine   *gs.Engine
	scaleDSL *ScaleDSL
	options  []scales.Options
}

// ScaleDSL implements the DSL side-effect methods
type ScaleDSL struct {
	parser *Parser
}

// NewParser creates a scale DSL parser
func NewParser() (*Parser, error) {
	parser := &Parser{
		scaleDSL: &ScaleDSL{},
	}
	parser.scaleDSL.parser = parser

	larkParser := gs.NewLarkParser()

	engine, err := gs.NewEngine(GetScaleDSLGrammar(), parser.scaleDSL, larkParser)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	parser.engine = engine

	return parser, nil
}

// Parse executes every statement and returns one validated Options per
// scale() call, in order. Statements are separated by ';' or newlines.
func (p *Parser) Parse(ctx context.Context, dslCode string) ([]scales.Options, error) {
	statements := splitStatements(dslCode)
	if len(statements) == 0 {
		return nil, ErrEmptyDSL
	}

	// engine callbacks append to p.options
	p.mu.Lock()
	defer p.mu.Unlock()

	p.options = make([]scales.Options, 0, len(statements))
	for i, stmt := range statements {
		if err := p.engine.Execute(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to execute statement %d %q: %w", i+1, stmt, err)
		}
	}

	if len(p.options) == 0 {
		return nil, fmt.Errorf("no scale() calls found in DSL code")
	}

	logger.Debug("Scale DSL parsed", logger.Fields{
		"statements": len(statements),
		"exercises":  len(p.options),
	})

	return p.options, nil
}

// ParseOne parses code that must hold exactly one scale() call
func (p *Parser) ParseOne(ctx context.Context, dslCode string) (scales.Options, error) {
	all, err := p.Parse(ctx, dslCode)
	if err != nil {
		return scales.Options{}, err
	}
	if len(all) != 1 {
		return scales.Options{}, fmt.Errorf("expected one scale() call, got %d", len(all))
	}
	return all[0], nil
}

func splitStatements(code string) []string {
	fields := strings.FieldsFunc(code, func(r rune) bool {
		return r == ';' || r == '\n'
	})

	statements := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			statements = append(statements, f)
		}
	}
	return statements
}

// ========== DSL Side-Effect Methods (ScaleDSL) ==========

// Scale handles scale() calls, starting from the default exercise
func (d *ScaleDSL) Scale(args gs.Args) error {
	p := d.parser
	opts := scales.DefaultOptions()

	if keyValue, ok := args["key"]; ok && keyValue.Kind == gs.ValueString {
		opts.Key = keyValue.Str
	}

	if modeValue, ok := args["mode"]; ok && modeValue.Kind == gs.ValueString {
		mode, err := scales.ParseMode(modeValue.Str)
		if err != nil {
			return fmt.Errorf("scale: %w", err)
		}
		opts.Mode = mode
	}

	if rhythmValue, ok := args["rhythm"]; ok && rhythmValue.Kind == gs.ValueString {
		rhythm, err := scales.ParseRhythmPattern(rhythmValue.Str)
		if err != nil {
			return fmt.Errorf("scale: %w", err)
		}
		opts.Rhythm = rhythm
	}

	if slurValue, ok := args["slur"]; ok && slurValue.Kind == gs.ValueString {
		slur, err := scales.ParseSlurPattern(slurValue.Str)
		if err != nil {
			return fmt.Errorf("scale: %w", err)
		}
		opts.SlurPattern = slur
	}

	if octavesValue, ok := args["octaves"]; ok && octavesValue.Kind == gs.ValueNumber {
		opts.Octaves = int(octavesValue.Num)
	}

	if startValue, ok := args["start"]; ok && startValue.Kind == gs.ValueNumber {
		opts.StartOctave = int(startValue.Num)
	}

	if err := opts.Validate(); err != nil {
		return fmt.Errorf("scale: %w", err)
	}

	p.options = append(p.options, opts)
	return nil
}
