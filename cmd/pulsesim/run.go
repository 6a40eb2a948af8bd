// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count FILE",
		Short: "Count low and high pulses over a number of button presses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("presses") {
				a.cfg.Presses, _ = cmd.Flags().GetInt("presses")
			}
			if a.cfg.Presses < 0 {
				return errors.Errorf("invalid press count %d", a.cfg.Presses)
			}
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			s := pulsesim.NewSimulator(n, a.simOptions()...)
			c := s.Run(a.cfg.Presses)
			if err := s.Err(); err != nil {
				return errors.Wrap(err, "no result")
			}
			a.log.Info("simulation done", "presses", a.cfg.Presses, "low", c.Low, "high", c.High)
			fmt.Fprintf(cmd.OutOrStdout(), "low=%d high=%d product=%d\n", c.Low, c.High, c.Product())
			return a.done(cmd)
		},
	}
	cmd.Flags().Int("presses", 1000, "number of button presses")
	return cmd
}

func newCycleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycle FILE",
		Short: "Find the number of button presses after which the sink first receives a low pulse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := cmd.Flags()
			if fs.Changed("sink") {
				a.cfg.Sink, _ = fs.GetString("sink")
			}
			if fs.Changed("max-presses") {
				a.cfg.MaxPresses, _ = fs.GetUint64("max-presses")
			}
			n, err := a.load(args[0])
			if err != nil {
				return err
			}
			r, err := pulsesim.FindCycle(n,
				pulsesim.WithSink(a.cfg.Sink),
				pulsesim.WithMaxPresses(a.cfg.MaxPresses),
				pulsesim.WithSimulatorOptions(a.simOptions()...))
			if err != nil {
				return errors.Wrap(err, "no result")
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return a.done(cmd)
		},
	}
	cmd.Flags().String("sink", pulsesim.DefaultSink, "name of the sink module")
	cmd.Flags().Uint64("max-presses", pulsesim.DefaultMaxPresses, "give up after this many button presses")
	return cmd
}
