// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"log/slog"
	"os"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/internal/logging"
	"github.com/db47h/pulsesim/pulsemetrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands.
//
type app struct {
	cfg     config
	log     *slog.Logger
	reg     *prometheus.Registry
	metrics *pulsemetrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "pulsesim",
		Short:         "pulsesim simulates pulse propagation in module networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := cmd.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.Bool("metrics", false, "print simulation metrics to stderr when done")
	pf.Uint64("max-pulses", pulsesim.DefaultMaxPulses, "abort a button press after this many pulses (0: no limit)")

	cmd.AddCommand(newCountCmd(a), newCycleCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	fs := cmd.Flags()
	path, _ := fs.GetString("config")
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	if fs.Changed("log-level") {
		cfg.LogLevel, _ = fs.GetString("log-level")
	}
	if fs.Changed("metrics") {
		cfg.Metrics, _ = fs.GetBool("metrics")
	}
	if fs.Changed("max-pulses") {
		cfg.MaxPulses, _ = fs.GetUint64("max-pulses")
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), level)
	if cfg.Metrics {
		a.reg = prometheus.NewRegistry()
		if a.metrics, err = pulsemetrics.New(a.reg); err != nil {
			return err
		}
	}
	return nil
}

// load parses the network in the named file.
//
func (a *app) load(name string) (*pulsesim.Network, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open network")
	}
	defer f.Close()
	n, err := pulsesim.Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	a.log.Debug("network loaded", "file", name, "modules", n.Len())
	return n, nil
}

func (a *app) simOptions() []pulsesim.Option {
	opts := []pulsesim.Option{pulsesim.WithLogger(a.log), pulsesim.WithMaxPulses(a.cfg.MaxPulses)}
	if a.metrics != nil {
		opts = append(opts, pulsesim.WithObserver(a.metrics))
	}
	return opts
}

// done dumps metrics if enabled.
//
func (a *app) done(cmd *cobra.Command) error {
	if a.reg == nil {
		return nil
	}
	return pulsemetrics.WriteText(cmd.ErrOrStderr(), a.reg)
}
