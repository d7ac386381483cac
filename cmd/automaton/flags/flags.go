// Package flags defines the command line flags of the automaton binary.
package flags

import (
	"github.com/prysmaticlabs/automaton/config/params"
	"github.com/prysmaticlabs/automaton/io/logs"
	"github.com/urfave/cli/v2"
)

var defaults = params.DefaultConfig()

var (
	// ConfigFileFlag specifies a yaml file with automaton parameters. Flags set
	// on the command line take precedence over the file.
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config-file",
		Usage: "The filepath to a yaml file with automaton parameters",
	}
	// CellsFlag defines the length of the row.
	CellsFlag = &cli.IntFlag{
		Name:  "cells",
		Usage: "Number of cells in the row, fixed for the whole run",
		Value: defaults.Cells,
	}
	// BlockWidthFlag defines the width of a storage block in bits.
	BlockWidthFlag = &cli.IntFlag{
		Name:  "block-width",
		Usage: "Bits per storage block (8, 16, 32 or 64)",
		Value: defaults.BlockWidth,
	}
	// GenerationsFlag defines how many steps follow the seed generation.
	GenerationsFlag = &cli.IntFlag{
		Name:  "generations",
		Usage: "Number of generations computed after the seed",
		Value: defaults.Generations,
	}
	// RuleFlag selects the elementary rule by its Wolfram code.
	RuleFlag = &cli.UintFlag{
		Name:  "rule",
		Usage: "Wolfram code of the elementary rule (0-255)",
		Value: uint(defaults.Rule),
	}
	// SeedFlag describes generation 0.
	SeedFlag = &cli.StringFlag{
		Name:  "seed",
		Usage: "Initial cells: canonical, single, cells:i,j,k or a pattern of '#' and '.'",
		Value: defaults.Seed,
	}
	// RandomSeedFlag drives the rows generated by the verify command.
	RandomSeedFlag = &cli.Int64Flag{
		Name:  "random-seed",
		Usage: "Source seed for the random rows used by verify",
		Value: defaults.RandomSeed,
	}
	// ColorFlag enables colored output of alive cells.
	ColorFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "Color alive cells in the rendered output",
	}
	// VerifyInstancesFlag defines how many independent rows verify checks.
	VerifyInstancesFlag = &cli.IntFlag{
		Name:  "instances",
		Usage: "Number of independent automaton instances checked concurrently",
		Value: 8,
	}
)

var (
	// VerbosityFlag defines the logrus configuration.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	// LogFormat specifies the log output format.
	LogFormat = NewEnumFlag("log-format", "Specify log formatting.", logs.FormatText,
		logs.FormatText, logs.FormatJSON, logs.FormatFluentd)
	// LogFileName specifies the log output file name.
	LogFileName = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Specify log file name, relative or absolute",
	}
	// MonitoringHostFlag defines the host used to serve prometheus metrics.
	MonitoringHostFlag = &cli.StringFlag{
		Name:  "monitoring-host",
		Usage: "Host used for listening and responding metrics for prometheus.",
		Value: "127.0.0.1",
	}
	// MonitoringPortFlag defines the http port used to serve prometheus metrics.
	MonitoringPortFlag = &cli.IntFlag{
		Name:  "monitoring-port",
		Usage: "Port used to listen and respond metrics for prometheus, 0 disables the server.",
	}
)

// AutomatonFlags are the flags shaping the automaton itself.
var AutomatonFlags = []cli.Flag{
	ConfigFileFlag,
	CellsFlag,
	BlockWidthFlag,
	GenerationsFlag,
	RuleFlag,
	SeedFlag,
	RandomSeedFlag,
	ColorFlag,
}

// CommonFlags are the logging and monitoring flags.
var CommonFlags = []cli.Flag{
	VerbosityFlag,
	LogFormat,
	LogFileName,
	MonitoringHostFlag,
	MonitoringPortFlag,
}
