// Package browser opens links in the platform's default browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/notedex/internal/core/ports/driven"
)

// Ensure Opener implements the interface.
var _ driven.LinkOpener = (*Opener)(nil)

// Opener starts the platform URL handler.
type Opener struct {
	goos  string
	start func(name string, args ...string) error
}

// NewOpener creates an opener for the running platform.
func NewOpener() *Opener {
	return &Opener{
		goos:  runtime.GOOS,
		start: startCommand,
	}
}

// Open starts the default handler for link.
func (o *Opener) Open(link string) error {
	name, args, err := command(o.goos, link)
	if err != nil {
		return err
	}
	return o.start(name, args...)
}

// command returns the handler invocation for goos.
func command(goos, link string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{link}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{link}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

func startCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the handler without blocking the caller.
	go func() { _ = cmd.Wait() }()
	return nil
}
