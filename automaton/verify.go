package automaton

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/automaton/async"
	"github.com/prysmaticlabs/automaton/config/params"
	"github.com/prysmaticlabs/automaton/shared/bitfield"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/d4l3k/messagediff.v1"
)

// ErrDiverged is returned when the in-place engine disagrees with the
// double-buffered reference.
var ErrDiverged = errors.New("engine diverged from reference")

const progressInterval = 5 * time.Second

// Verifier runs independent automaton instances concurrently and checks every
// generation of the in-place engine against StepDoubleBuffered. Each instance
// owns its own rows; nothing is shared between goroutines.
type Verifier struct {
	cfg       *params.AutomatonConfig
	instances int
	// OnInstanceDone, when set, is called once per finished instance.
	OnInstanceDone func()

	lock   sync.RWMutex
	runErr error
}

// NewVerifier returns a verifier for instances rows shaped by cfg. Instance 0
// uses the configured seed, the others get rows drawn from cfg.RandomSeed.
func NewVerifier(cfg *params.AutomatonConfig, instances int) (*Verifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if instances < 1 {
		return nil, errors.Errorf("need at least one instance, got %d", instances)
	}
	return &Verifier{cfg: cfg.Copy(), instances: instances}, nil
}

// Run verifies all instances and returns the first divergence found.
func (v *Verifier) Run(ctx context.Context) error {
	err := v.run(ctx)
	v.lock.Lock()
	v.runErr = err
	v.lock.Unlock()
	return err
}

func (v *Verifier) run(ctx context.Context) error {
	seed, err := ParseSeed(v.cfg.Seed, v.cfg.Cells)
	if err != nil {
		return errors.Wrap(err, "could not build seed")
	}
	var finished int32
	stop := async.RunEvery(ctx, "verify-progress", progressInterval, func() {
		log.WithFields(logrus.Fields{
			"finished":  atomic.LoadInt32(&finished),
			"instances": v.instances,
		}).Info("Verification in progress")
	})
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	for k := 0; k < v.instances; k++ {
		k := k
		alive := seed
		if k > 0 {
			rng := rand.New(rand.NewSource(v.cfg.RandomSeed + int64(k))) // #nosec G404
			alive = RandomSeed(rng, v.cfg.Cells)
		}
		g.Go(func() error {
			err := v.verifyInstance(ctx, k, alive)
			outcome := "ok"
			if err != nil {
				outcome = "failed"
			}
			verifiedInstancesTotal.WithLabelValues(outcome).Inc()
			atomic.AddInt32(&finished, 1)
			if v.OnInstanceDone != nil {
				v.OnInstanceDone()
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"instances":   v.instances,
		"generations": v.cfg.Generations,
	}).Info("Engine matches reference")
	return nil
}

func (v *Verifier) verifyInstance(ctx context.Context, instance int, alive []int) error {
	rules := RuleFromNumber(v.cfg.Rule)
	engine := NewEngine(v.cfg.BlockWidth, v.cfg.Cells, alive, rules)
	reference := bitfield.New[uint8](v.cfg.Cells)
	for _, i := range alive {
		reference.SetBitAt(i, true)
	}
	for gen := 1; gen <= v.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		engine.Step()
		StepDoubleBuffered(reference, rules)
		want, got := reference.Bools(), Snapshot(engine.Cells())
		if diff, equal := messagediff.PrettyDiff(want, got); !equal {
			return errors.Wrapf(ErrDiverged, "instance %d at generation %d:\n%s", instance, gen, diff)
		}
	}
	log.WithField("instance", instance).Debug("Instance matches reference")
	return nil
}

// Status reports the error of the last verification, if any.
func (v *Verifier) Status() error {
	v.lock.RLock()
	defer v.lock.RUnlock()
	return v.runErr
}
