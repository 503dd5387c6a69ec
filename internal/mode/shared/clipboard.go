package shared

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"

	"github.com/zjrosen/twig/internal/log"
)

// Clipboard copies text for the user.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard writes to the OS clipboard. Over SSH or inside a terminal
// multiplexer, where the local clipboard is out of reach, it emits an OSC 52
// sequence so the outer terminal stores the text instead.
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	if remoteSession() {
		termenv.DefaultOutput().Copy(text)
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Warn(log.CatUI, "System clipboard unavailable, using OSC 52", "error", err)
		termenv.DefaultOutput().Copy(text)
	}
	return nil
}

func remoteSession() bool {
	for _, v := range []string{"SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT", "TMUX", "STY"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}
