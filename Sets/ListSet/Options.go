package ListSet

import "github.com/sirupsen/logrus"

type config struct {
	log *logrus.Logger
}

// Option configures a ListSet at construction. The resulting configuration is shared by
// every set derived from it: clones and the results of Filter, Union, Intersect and Difference.
type Option func(*config)

// WithLogger sets where rejected duplicates and missing removals are reported, at debug level.
// Defaults to logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

func newConfig(opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}
	return c
}

func (c config) debug(msg string, v any) {
	if c.log != nil && c.log.IsLevelEnabled(logrus.DebugLevel) {
		c.log.WithField("value", v).Debug(msg)
	}
}
