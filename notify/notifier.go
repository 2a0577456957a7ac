// Package notify defines the sink through which timers emit human-readable
// feedback, so that destinations other than console printing can be plugged in.
package notify

// Notifier receives one line of UTF-8 text per notification.
type Notifier interface {
	Notify(line string) error
}
