package automaton

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/automaton/config/params"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "automaton")

// Runner drives one automaton instance: it renders the seed generation and
// then alternates step and render for the configured number of generations.
type Runner struct {
	cfg    *params.AutomatonConfig
	engine *Engine
	glyphs Glyphs

	lock   sync.RWMutex
	runErr error
}

// NewRunner builds the engine described by cfg. The config is copied, later
// changes to cfg do not affect the runner.
func NewRunner(cfg *params.AutomatonConfig, glyphs Glyphs) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	alive, err := ParseSeed(cfg.Seed, cfg.Cells)
	if err != nil {
		return nil, errors.Wrap(err, "could not build seed")
	}
	return &Runner{
		cfg:    cfg.Copy(),
		engine: NewEngine(cfg.BlockWidth, cfg.Cells, alive, RuleFromNumber(cfg.Rule)),
		glyphs: glyphs,
	}, nil
}

// Engine returns the engine owned by the runner.
func (r *Runner) Engine() *Engine {
	return r.engine
}

// Run writes every generation to w, one line each. The context is checked
// between generations only, a started step always completes.
func (r *Runner) Run(ctx context.Context, w io.Writer) error {
	err := r.run(ctx, w)
	r.lock.Lock()
	r.runErr = err
	r.lock.Unlock()
	return err
}

func (r *Runner) run(ctx context.Context, w io.Writer) error {
	log.WithFields(logrus.Fields{
		"cells":       r.cfg.Cells,
		"blockWidth":  r.engine.Width(),
		"footprint":   humanize.Bytes(uint64(r.engine.SizeBytes())),
		"rule":        r.engine.Rules().String(),
		"generations": r.cfg.Generations,
	}).Info("Starting automaton")

	if err := r.emit(w); err != nil {
		return err
	}
	for g := 0; g < r.cfg.Generations; g++ {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "stopped after %d generations", r.engine.Generation())
		}
		start := time.Now()
		r.engine.Step()
		stepSeconds.Observe(time.Since(start).Seconds())
		generationsTotal.Inc()

		if err := r.emit(w); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"generation": r.engine.Generation(),
		"alive":      r.engine.Cells().Count(),
	}).Info("Finished automaton")
	return nil
}

func (r *Runner) emit(w io.Writer) error {
	alive := r.engine.Cells().Count()
	aliveCells.Set(float64(alive))
	log.WithFields(logrus.Fields{
		"generation": r.engine.Generation(),
		"alive":      alive,
	}).Debug("Rendering generation")
	if _, err := fmt.Fprintln(w, Render(r.engine.Cells(), r.glyphs)); err != nil {
		return errors.Wrap(err, "could not write generation")
	}
	return nil
}

// Status reports the error of the last run, if any.
func (r *Runner) Status() error {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.runErr
}
