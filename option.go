package stopwatch

import "github.com/ProtonMail/stopwatch/notify"

// Option represents a type that can be used to configure a timer.
type Option interface {
	config(cfg *config)
}

type config struct {
	clock          Clock
	notifier       notify.Notifier
	startMessage   string
	stopMessage    string
	verbose        bool
	dataStore      DataStore
	includeArgs    bool
	includeResults bool
}

func newConfig(withOpt ...Option) *config {
	cfg := &config{
		verbose:        true,
		includeArgs:    true,
		includeResults: true,
	}

	for _, opt := range withOpt {
		opt.config(cfg)
	}

	return cfg
}

// WithClock instructs the timer to read timestamps from the given clock instead
// of the system monotonic clock.
func WithClock(clock Clock) Option {
	return &withClock{
		clock: clock,
	}
}

type withClock struct {
	clock Clock
}

func (opt withClock) config(cfg *config) {
	cfg.clock = opt.clock
}

// WithNotifier instructs a feedback timer to emit its messages through the
// given notifier instead of writing to standard output.
func WithNotifier(notifier notify.Notifier) Option {
	return &withNotifier{
		notifier: notifier,
	}
}

type withNotifier struct {
	notifier notify.Notifier
}

func (opt withNotifier) config(cfg *config) {
	cfg.notifier = opt.notifier
}

// WithStartMessage instructs a feedback timer to emit the given message when a
// measurement starts.
func WithStartMessage(message string) Option {
	return &withStartMessage{
		message: message,
	}
}

type withStartMessage struct {
	message string
}

func (opt withStartMessage) config(cfg *config) {
	cfg.startMessage = opt.message
}

// WithStopMessage instructs a feedback timer to emit the given message before
// its timing report when a measurement stops.
func WithStopMessage(message string) Option {
	return &withStopMessage{
		message: message,
	}
}

type withStopMessage struct {
	message string
}

func (opt withStopMessage) config(cfg *config) {
	cfg.stopMessage = opt.message
}

// WithVerbose controls whether a feedback timer emits anything at all. With
// verbose false the timer still records elapsed time for programmatic access.
func WithVerbose(verbose bool) Option {
	return &withVerbose{
		verbose: verbose,
	}
}

type withVerbose struct {
	verbose bool
}

func (opt withVerbose) config(cfg *config) {
	cfg.verbose = opt.verbose
}

// WithDataStore instructs a collector to append side-channel data to the given
// store instead of its own slice-backed one.
func WithDataStore(store DataStore) Option {
	return &withDataStore{
		store: store,
	}
}

type withDataStore struct {
	store DataStore
}

func (opt withDataStore) config(cfg *config) {
	cfg.dataStore = opt.store
}

// WithoutArgs instructs the repeated-call drivers to leave the call arguments
// out of the per-call records.
func WithoutArgs() Option {
	return &withoutArgs{}
}

type withoutArgs struct{}

func (withoutArgs) config(cfg *config) {
	cfg.includeArgs = false
}

// WithoutResults instructs the repeated-call drivers to leave the call results
// out of the per-call records. Combined with WithoutArgs, no records are stored
// at all and only timings are collected.
func WithoutResults() Option {
	return &withoutResults{}
}

type withoutResults struct{}

func (withoutResults) config(cfg *config) {
	cfg.includeResults = false
}
