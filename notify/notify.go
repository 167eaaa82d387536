// Package notify carries user-facing notifications out of the stores and
// flows. The HTTP layer has no push channel, so the default implementation
// records them to the structured log; a real delivery channel can replace it
// behind the same interface.
package notify

import "github.com/sirupsen/logrus"

type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

type logNotifier struct {
	log *logrus.Logger
}

func NewLog(log *logrus.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Success(msg string) {
	n.log.WithField("kind", "success").Info(msg)
}

func (n *logNotifier) Info(msg string) {
	n.log.WithField("kind", "info").Info(msg)
}

func (n *logNotifier) Error(msg string) {
	n.log.WithField("kind", "error").Warn(msg)
}
