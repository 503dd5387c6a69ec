package shared

import (
	"github.com/gen2brain/beeep"

	"github.com/zjrosen/twig/internal/log"
)

// Notifier raises a desktop notification.
type Notifier interface {
	Notify(title, message string)
}

// DesktopNotifier uses the platform notification service. Failures are
// logged and otherwise ignored.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, message string) {
	if err := beeep.Notify(title, message, ""); err != nil {
		log.Warn(log.CatUI, "Desktop notification failed", "error", err)
	}
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(string, string) {}
