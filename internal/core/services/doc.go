// Package services implements the driving port interfaces.
// Services contain the core logic of the browse pipeline and orchestrate
// calls to driven ports (adapters):
//
//	IndexLoader -> Catalogue (normalise, hold, filter) -> Renderer -> Sink
//
// Controller ties these together for an interactive session.
//
// Services are pure Go with no external dependencies.
package services
