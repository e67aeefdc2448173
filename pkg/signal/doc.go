// Package signal provides the reactive value container behind every piece of
// form and field state.
//
// A Signal holds one value and a list of observers. Set and Update notify the
// observers with the (next, previous) pair, but only when the new value is
// not equal to the old one. Equality defaults to a deep comparison that
// treats nil and empty slices and maps as equal, so re-storing a value that
// merely looks different in memory never produces a notification.
//
//	count := signal.New(1)
//	stop := count.Subscribe(func(next, prev int) {
//	    fmt.Println(prev, "->", next)
//	})
//	defer stop()
//
//	count.Set(1) // no-op
//	count.Set(2) // prints "1 -> 2"
package signal
