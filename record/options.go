package record

// Option is an option for controlling Decode.
type Option func(*config)

type config struct {
	stopOnFirstError bool
	pathPrefix       string
	allowUnknown     bool
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// StopOnFirstError makes Decode return after the first failing field
// instead of collecting all of them.
func StopOnFirstError(v bool) Option {
	return func(c *config) { c.stopOnFirstError = v }
}

// PathPrefix replaces the path of the decoded node in error paths.
func PathPrefix(p string) Option {
	return func(c *config) { c.pathPrefix = p }
}

// AllowUnknown ignores tokens which no field maps to.
func AllowUnknown(v bool) Option {
	return func(c *config) { c.allowUnknown = v }
}
