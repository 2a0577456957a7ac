package notify

import (
	"fmt"
	"io"
)

// WriterNotifier writes each notification as one line to the given writer.
type WriterNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(line string) error {
	_, err := fmt.Fprintln(n.w, line)
	return err
}
