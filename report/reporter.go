package report

// Reporter is the interface that is required to be implemented by any report
// generation tool.
type Reporter interface {
	ProduceReport(runs []*Run) error
}
