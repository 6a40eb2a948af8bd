/*
Package pulsesim simulates pulse propagation in networks of communication
modules and finds the cycle length of periodic networks.

A network is described as text, one module per line:

	broadcaster -> a, b, c
	%a -> b
	%b -> c
	%c -> inv
	&inv -> a

There are three kinds of modules:

  - the broadcaster forwards every pulse to all its destinations.
  - flip flops (%) ignore high pulses. A low pulse toggles them and they send
    high when they turn on, low when they turn off.
  - conjunctions (&) remember the last pulse sent by each of their inputs and
    send low if all of them are high, high otherwise.

Pressing the button sends a low pulse to the broadcaster. Pulses are
delivered in the order they are sent, and a press ends when no pulse is in
flight:

	n, err := pulsesim.ParseString(input)
	if err != nil {
		// handle error
	}
	c := pulsesim.NewSimulator(n).Run(1000)
	fmt.Println(c.Low * c.High)

A press that does not settle within the simulator's pulse budget (see
WithMaxPulses) stops the simulator, and Simulator.Err reports ErrNoQuiescence.

Networks where a sink is fed by a single conjunction, itself fed by
periodically firing conjunctions, can be solved without simulating every press
with FindCycle.
*/
package pulsesim
