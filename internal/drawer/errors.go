package drawer

import "errors"

var (
	// ErrViewportUnavailable is returned when the host cannot report a width.
	ErrViewportUnavailable = errors.New("viewport width unavailable")
	// ErrNoScheduler is returned by NewController without a Scheduler.
	ErrNoScheduler = errors.New("no scheduler configured")
)

// ConfigError reports a host or configuration problem that prevents the
// drawer from running. It is the only error surfaced to callers.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return "drawer: " + e.Op + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
