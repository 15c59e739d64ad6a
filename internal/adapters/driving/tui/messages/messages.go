// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

// Started is sent once the browse session has finished loading the
// index. Err is set when the load failed.
type Started struct {
	Err error
}

// Rendered is sent when the controller has pushed new output to the
// sink. The view pulls the sink's snapshot in response.
type Rendered struct{}

// Opened is sent when the user opens the selected note.
type Opened struct {
	URL string
}

// Quit is sent to exit the application.
type Quit struct{}
