package optspec

// Preparse runs the scanning stage plus default substitution and validation,
// without ever firing a transform or trigger hook. It exists so a consumer
// can pull out bootstrap options — a config file path, a log level — before
// hooks that may depend on that configuration run.
func (r *Registry) Preparse(tokens []string) (Options, []string, error) {
	raw, positionals, err := r.scan(tokens)
	if err != nil {
		return nil, nil, err
	}
	opts, err := r.finalize(nil, raw, false)
	if err != nil {
		return nil, nil, err
	}
	return opts, positionals, nil
}

// Parse scans tokens and runs the full value pipeline. consumer is handed to
// every transform and trigger hook. No handler is dispatched.
func (r *Registry) Parse(consumer any, tokens []string) (Options, []string, error) {
	raw, positionals, err := r.scan(tokens)
	if err != nil {
		return nil, nil, err
	}
	opts, err := r.finalize(consumer, raw, true)
	if err != nil {
		return nil, nil, err
	}
	return opts, positionals, nil
}

// Run dispatches pre-parsed input. With no positionals the finalized option
// map itself is the result and no handler is invoked. Otherwise the first
// positional selects an argument — aliases and unambiguous prefixes are
// accepted — and its handler's return value becomes the result.
func (r *Registry) Run(consumer any, opts Options, positionals []string) (any, error) {
	if len(positionals) == 0 {
		return opts, nil
	}
	name, err := r.resolveArgument(positionals[0])
	if err != nil {
		return nil, err
	}
	logger.Debug("dispatching", "argument", name, "rest", len(positionals)-1)
	return r.args[name].Handler(consumer, name, opts, positionals[1:])
}

// Handle is Parse followed by Run.
func (r *Registry) Handle(consumer any, tokens []string) (any, error) {
	opts, positionals, err := r.Parse(consumer, tokens)
	if err != nil {
		return nil, err
	}
	return r.Run(consumer, opts, positionals)
}
