// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command pulsesim runs pulse network simulations.
//
//	pulsesim count input.txt
//	pulsesim cycle --sink rx input.txt
//
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pulsesim:", err)
		os.Exit(1)
	}
}
