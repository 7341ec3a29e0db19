// Package serlog is a line-oriented, filtered logger for serial and console
// channels. It grew out of kernel-style logging needs: records carry a level
// and a hierarchical target, an operator restricts emission at startup with a
// compact filter spec ("info,uart=debug"), and every emitted line is written
// atomically to the physical channel under a busy-wait line lock.
//
// # Design overview
//
//   - Init-time setup: the filter spec is parsed once into a bounded directive
//     set (capacity 8), the channel and timing capabilities are probed once,
//     and the assembled state installs itself via a single compare-and-swap.
//     There is no reconfiguration path; a second Init fails with
//     ErrAlreadyInitialized and leaves the first installation untouched.
//   - Fast reject: the maximum level any directive can enable is computed at
//     Init and checked before directive matching, so records that cannot
//     possibly be emitted cost one atomic load and a compare.
//   - Directive matching scans from the most recently declared entry backward
//     and returns on the first name that prefixes the target, so later (more
//     specific) entries win. With no matching directive nothing is logged.
//   - Timestamps are best effort: a cycle counter delta when one exists, a
//     nanosecond conversion only when the counter is invariant and a
//     calibrated frequency is known, and empty otherwise. The conversion uses
//     a 128-bit intermediate so large deltas do not overflow.
//   - Line atomicity: LineWriter holds the channel for exactly one line and
//     unconditionally emits CRLF and releases on every exit path. The
//     BestEffort writer skips the lock entirely for crash paths where
//     deadlock-freedom outranks interleaving safety.
//
// # Usage
//
//	err := serlog.Init("info,uart=trace", serlog.Config{
//		Channel: host.NewConsole(),
//		Timing:  host.NewTiming(),
//	})
//	if err != nil {
//		// already initialized elsewhere
//	}
//	serlog.Info("boot", "memory map ready, %d regions", n)
//
// Scoped access to the locked line writer:
//
//	serlog.ModuleLine("acpi", func(w *serlog.LineWriter) {
//		fmt.Fprintf(w, "MADT at %#x", addr)
//	})
//
// The transport is the last-resort diagnostic path: channel write failures
// surface as panics from the channel implementations, never as error returns.
package serlog
