// Package engine owns a single Game of Life board and exposes the command
// surface a presentation layer drives: run control, cell editing, template
// selection, rotation, placement preview and stamping.
//
// Time is injected. The engine never starts timers itself; a Scheduler calls
// Engine.Tick at the configured speed while the engine is running. Tests use
// ManualScheduler to fire ticks deterministically.
package engine
