// Package main runs a bit-packed elementary cellular automaton and prints
// every generation.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prysmaticlabs/automaton/automaton"
	"github.com/prysmaticlabs/automaton/cmd/automaton/flags"
	"github.com/prysmaticlabs/automaton/config/params"
	"github.com/prysmaticlabs/automaton/io/logs"
	"github.com/prysmaticlabs/automaton/monitoring/prometheus"
	"github.com/prysmaticlabs/automaton/runtime/version"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"
)

var log = logrus.WithField("prefix", "main")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.App{}
	app.Name = "automaton"
	app.Usage = "Runs a one-dimensional cellular automaton over a bit-packed row"
	app.Version = version.Version()
	app.Flags = append(append([]cli.Flag{}, flags.AutomatonFlags...), flags.CommonFlags...)
	app.Before = before
	app.Action = runAction
	app.Commands = []*cli.Command{
		{
			Name:   "run",
			Usage:  "Print the seed generation followed by every computed generation",
			Action: runAction,
		},
		{
			Name:   "verify",
			Usage:  "Check the in-place engine against a double-buffered reference on independent rows",
			Flags:  []cli.Flag{flags.VerifyInstancesFlag},
			Action: verifyAction,
		},
		{
			Name:   "rules",
			Usage:  "Print the rule table in use",
			Action: rulesAction,
		},
	}
	return &app
}

func before(c *cli.Context) error {
	if err := logs.Configure(c.String(flags.VerbosityFlag.Name), c.String(flags.LogFormat.Name)); err != nil {
		return err
	}
	if logFileName := c.String(flags.LogFileName.Name); logFileName != "" {
		if err := logs.ConfigurePersistentLogging(logFileName); err != nil {
			log.WithError(err).Error("Failed to configure logging to disk.")
		}
	}
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	log.Debugf("Effective config: %s", pretty.Sprint(cfg))
	params.OverrideConfig(cfg)
	return nil
}

// configFromContext layers the defaults, the optional config file and the
// flags explicitly set on the command line.
func configFromContext(c *cli.Context) (*params.AutomatonConfig, error) {
	cfg := params.DefaultConfig()
	if configFile := c.String(flags.ConfigFileFlag.Name); configFile != "" {
		loaded, err := params.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if c.IsSet(flags.CellsFlag.Name) {
		cfg.Cells = c.Int(flags.CellsFlag.Name)
	}
	if c.IsSet(flags.BlockWidthFlag.Name) {
		cfg.BlockWidth = c.Int(flags.BlockWidthFlag.Name)
	}
	if c.IsSet(flags.GenerationsFlag.Name) {
		cfg.Generations = c.Int(flags.GenerationsFlag.Name)
	}
	if c.IsSet(flags.RuleFlag.Name) {
		rule := c.Uint(flags.RuleFlag.Name)
		if rule > 255 {
			return nil, errors.Errorf("rule must be in [0, 255], got %d", rule)
		}
		cfg.Rule = uint8(rule)
	}
	if c.IsSet(flags.SeedFlag.Name) {
		cfg.Seed = c.String(flags.SeedFlag.Name)
	}
	if c.IsSet(flags.RandomSeedFlag.Name) {
		cfg.RandomSeed = c.Int64(flags.RandomSeedFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// startMonitoring serves metrics and the health of r when a monitoring port
// is configured. The returned function stops the server.
func startMonitoring(c *cli.Context, name string, r prometheus.StatusReporter) func() {
	port := c.Int(flags.MonitoringPortFlag.Name)
	if port == 0 {
		return func() {}
	}
	collector, err := prometheus.NewLogrusCollector(prom.DefaultRegisterer)
	if err != nil {
		log.WithError(err).Warn("Could not register log counters")
	} else {
		logrus.AddHook(collector)
	}
	svc := prometheus.NewService(fmt.Sprintf("%s:%d", c.String(flags.MonitoringHostFlag.Name), port))
	svc.Register(name, r)
	svc.Start()
	return func() {
		if err := svc.Stop(); err != nil {
			log.WithError(err).Error("Could not stop monitoring service")
		}
	}
}

func runAction(c *cli.Context) error {
	cfg := params.Config()
	glyphs := automaton.Glyphs{Alive: cfg.AliveGlyph, Dead: cfg.DeadGlyph}
	if c.Bool(flags.ColorFlag.Name) {
		glyphs = automaton.ColorGlyphs(glyphs)
	}
	runner, err := automaton.NewRunner(cfg, glyphs)
	if err != nil {
		return err
	}
	stop := startMonitoring(c, "automaton", runner)
	defer stop()

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return runner.Run(ctx, c.App.Writer)
}

func verifyAction(c *cli.Context) error {
	instances := c.Int(flags.VerifyInstancesFlag.Name)
	verifier, err := automaton.NewVerifier(params.Config(), instances)
	if err != nil {
		return err
	}
	bar := progressbar.NewOptions(
		instances,
		progressbar.OptionSetWriter(c.App.ErrWriter),
		progressbar.OptionSetDescription("verifying"),
	)
	verifier.OnInstanceDone = func() {
		if err := bar.Add(1); err != nil {
			log.WithError(err).Debug("Could not update progress")
		}
	}
	stop := startMonitoring(c, "verifier", verifier)
	defer stop()

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return verifier.Run(ctx)
}

func rulesAction(c *cli.Context) error {
	rules := automaton.RuleFromNumber(params.Config().Rule)
	if _, err := fmt.Fprintln(c.App.Writer, rules.String()); err != nil {
		return err
	}
	for code := 7; code >= 0; code-- {
		next := 0
		if rules.Next(uint8(code)) {
			next = 1
		}
		suffix := ""
		if rules.Flips(uint8(code)) {
			suffix = " (flips)"
		}
		if _, err := fmt.Fprintf(c.App.Writer, "%03b -> %d%s\n", code, next, suffix); err != nil {
			return err
		}
	}
	return nil
}
