package fork

import "go.uber.org/zap"

// Options define the Checker options.
type Options struct {
	Logger *zap.Logger
}

// DefaultOptions returns the default options as used by the Checker.
func DefaultOptions() Options {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return Options{
		Logger: logger,
	}
}

// WithLogger returns the options with the given logger.
func (opts Options) WithLogger(logger *zap.Logger) Options {
	opts.Logger = logger
	return opts
}
