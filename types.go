package scbind

// UnknownPolicy controls how wire keys without a matching descriptor are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Ignore unknown keys (forward compatible).
	UnknownStrict                      // Reject unknown keys with an error.
)

// String returns the policy name used in config files and logs.
func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrict:
		return "strict"
	default:
		return "strip"
	}
}

// ParseUnknownPolicy maps "strict" to UnknownStrict; anything else is UnknownStrip.
func ParseUnknownPolicy(s string) UnknownPolicy {
	if s == "strict" {
		return UnknownStrict
	}
	return UnknownStrip
}

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	Unknown  UnknownPolicy
	FailFast bool // Stop at the first issue instead of collecting all of them.
}

// Strict returns a DecodeOpt that rejects unknown keys.
func Strict() DecodeOpt { return DecodeOpt{Unknown: UnknownStrict} }

// PickOpt returns the last option, or the zero DecodeOpt.
func PickOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) == 0 {
		return DecodeOpt{}
	}
	return opts[len(opts)-1]
}
