// Package metrics samples the local host through gopsutil.
//
// A Sampler is safe for concurrent use: the dashboard runs each panel's
// collection in its own tea.Cmd goroutine. Rates (disk and network
// throughput, per-process CPU) are computed from deltas between calls, so the
// first sample of each reports zero.
package metrics
