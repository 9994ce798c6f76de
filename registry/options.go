package registry

import (
	"fmt"

	"github.com/arloliu/bitfield/encoding"
	"github.com/arloliu/bitfield/errs"
	"github.com/arloliu/bitfield/format"
	"github.com/arloliu/bitfield/internal/options"
)

// flagConfig collects the per-flag options of one Add call.
type flagConfig struct {
	description string
	position    int // -1 appends after the last occupied bit
	naSentinel  uint64
	caseMode    format.CaseMode
}

// FlagOption configures one flag at registration time.
type FlagOption = options.Option[*flagConfig]

func newFlagConfig() *flagConfig {
	return &flagConfig{
		position:   -1,
		naSentinel: encoding.DefaultNASentinel,
		caseMode:   format.CaseFirstWins,
	}
}

func applyFlagOptions(opts []FlagOption) (*flagConfig, error) {
	cfg := newFlagConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithDescription attaches a human-readable description to the flag.
//
// Descriptions travel with the registry's marshalled form but do not
// contribute to the layout fingerprint.
func WithDescription(description string) FlagOption {
	return options.New(func(cfg *flagConfig) error {
		if len(description) > encoding.MaxStringLength {
			return fmt.Errorf("%w: description is %d bytes", errs.ErrStringTooLong, len(description))
		}
		cfg.description = description

		return nil
	})
}

// WithPosition places the flag at an explicit starting bit instead of
// appending it after the last occupied bit. The resulting range must not
// overlap any registered flag.
func WithPosition(start int) FlagOption {
	return options.New(func(cfg *flagConfig) error {
		if start < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidPosition, start)
		}
		cfg.position = start

		return nil
	})
}

// WithNASentinel overrides the "not tested" code of an AddBinaryNA flag.
// Only 0b10 (the default) and 0b11 keep the sentinel distinct from the
// false and true codes. Other Add methods ignore this option.
func WithNASentinel(sentinel uint64) FlagOption {
	return options.New(func(cfg *flagConfig) error {
		if !encoding.IsValidNASentinel(sentinel) {
			return fmt.Errorf("%w: 0b%b", errs.ErrInvalidNASentinel, sentinel)
		}
		cfg.naSentinel = sentinel

		return nil
	})
}

// WithCaseMode sets how an AddCases flag resolves records matching more
// than one case predicate. The default is format.CaseFirstWins. Other Add
// methods ignore this option.
func WithCaseMode(mode format.CaseMode) FlagOption {
	return options.New(func(cfg *flagConfig) error {
		switch mode {
		case format.CaseFirstWins, format.CaseLastWins, format.CaseStrict:
			cfg.caseMode = mode
		default:
			return fmt.Errorf("%w: %d", errs.ErrInvalidCaseMode, mode)
		}

		return nil
	})
}

// marshalConfig collects the options of one Marshal call.
type marshalConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// MarshalOption configures Registry.Marshal.
type MarshalOption = options.Option[*marshalConfig]

func newMarshalConfig() *marshalConfig {
	return &marshalConfig{compression: format.CompressionZstd}
}

// WithCompression selects the codec applied to the marshalled name and
// description payloads. The default is format.CompressionZstd.
func WithCompression(compression format.CompressionType) MarshalOption {
	return options.New(func(cfg *marshalConfig) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = compression
		default:
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompressionType, compression)
		}

		return nil
	})
}

// WithLittleEndian marshals multi-byte header and entry fields in
// little-endian byte order. This is the default.
func WithLittleEndian() MarshalOption {
	return options.NoError(func(cfg *marshalConfig) {
		cfg.bigEndian = false
	})
}

// WithBigEndian marshals multi-byte header and entry fields in big-endian
// byte order. Unmarshal detects the order from the options word, so blobs
// written either way decode everywhere.
func WithBigEndian() MarshalOption {
	return options.NoError(func(cfg *marshalConfig) {
		cfg.bigEndian = true
	})
}
