package config

type Response struct {
	// MetaMaxLength limits the meta field of a response header, in bytes,
	// not counting the line terminator. The protocol fixes it at 1024; it
	// is configurable mainly to keep buffering bounded on hostile peers.
	MetaMaxLength int
}

// Config holds parser restrictions. Note that there is deliberately no
// counterpart limit for the request line: the wire grammar leaves it
// unbounded, so the caller must cap its own read buffer instead.
type Config struct {
	Response Response
}

// Default returns the config with the protocol-defined limits. Modify the
// returned value instead of constructing Config manually.
func Default() *Config {
	return &Config{
		Response: Response{
			MetaMaxLength: 1024,
		},
	}
}
