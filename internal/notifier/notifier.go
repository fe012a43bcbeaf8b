// Package notifier publishes short plain-text action messages to an
// external topic. Publishing is fire-and-forget: callers never learn
// whether a message made it to the broker.
package notifier

import "log"

type Notifier interface {
	Publish(topic, message string)
}

// LogNotifier is the fallback used when no broker is configured. It only
// logs the message that would have been published.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Publish(topic, message string) {
	log.Printf("notifier (no broker): topic=%s message=%q", topic, message)
}
