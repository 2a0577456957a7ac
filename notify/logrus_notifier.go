package notify

import "github.com/sirupsen/logrus"

// LogrusNotifier emits notifications through a logrus logger at info level.
type LogrusNotifier struct {
	logger *logrus.Logger
}

func NewLogrusNotifier(logger *logrus.Logger) *LogrusNotifier {
	return &LogrusNotifier{logger: logger}
}

func (n *LogrusNotifier) Notify(line string) error {
	n.logger.Info(line)
	return nil
}
