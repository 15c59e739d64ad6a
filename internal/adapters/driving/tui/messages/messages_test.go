package messages

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestMessages_AreTeaMsgs(t *testing.T) {
	msgs := []tea.Msg{
		Started{},
		Started{Err: errors.New("boom")},
		Rendered{},
		Opened{URL: "http://localhost:8000/n/a/"},
		Quit{},
	}

	for _, msg := range msgs {
		switch msg.(type) {
		case Started, Rendered, Opened, Quit:
		default:
			t.Fatalf("unexpected message type %T", msg)
		}
	}
}

func TestStarted_CarriesError(t *testing.T) {
	err := errors.New("index http://x/index.json: status 404")
	msg := Started{Err: err}

	assert.Equal(t, err, msg.Err)
}
