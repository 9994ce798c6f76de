package field

import "github.com/arloliu/bitfield/internal/options"

// decoderConfig collects the options of one NewDecoder call.
type decoderConfig struct {
	skipFingerprintCheck bool
}

// DecoderOption configures NewDecoder.
type DecoderOption = options.Option[*decoderConfig]

// WithoutFingerprintCheck disables the layout fingerprint comparison
// between the registry and the field.
//
// The width check still applies. Use this only when the field is known to
// be laid out by an equivalent registry under a different name, since a
// wrong layout decodes to silently wrong values.
func WithoutFingerprintCheck() DecoderOption {
	return options.NoError(func(cfg *decoderConfig) {
		cfg.skipFingerprintCheck = true
	})
}
