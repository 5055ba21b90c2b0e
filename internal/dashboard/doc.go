// Package dashboard implements the sot terminal UI as a Bubble Tea model.
//
// Every graph is a series: a ring of raw samples feeding a sparkline.Stream.
// The raw ring outlives the stream so the graph can be rebuilt at a new size
// or glyph mode and replayed without losing history. Each panel samples on
// its own tick, so a slow process scan never stalls the CPU graph.
package dashboard
