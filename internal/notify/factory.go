package notify

import (
	"fmt"
	"io"
	"math"

	"github.com/mitchellh/mapstructure"

	"firestige.xyz/encounter/internal/config"
	"firestige.xyz/encounter/internal/core"
)

// New builds the sink selected by cfg, rate limited when max_per_second is set.
func New(cfg config.NotifyConfig, out io.Writer) (Sink, error) {
	var sink Sink

	switch cfg.Sink {
	case "console":
		opts := ConsoleOptions{Color: true}
		if err := decodeOptions(cfg.Options, &opts); err != nil {
			return nil, err
		}
		sink = NewConsole(out, opts)
	case "log":
		var opts LogOptions
		if err := decodeOptions(cfg.Options, &opts); err != nil {
			return nil, err
		}
		sink = NewLogSink(opts)
	default:
		return nil, fmt.Errorf("%w: unsupported sink %q", core.ErrConfigInvalid, cfg.Sink)
	}

	if cfg.MaxPerSecond > 0 {
		sink = NewThrottle(sink, cfg.MaxPerSecond, int(math.Ceil(cfg.MaxPerSecond)))
	}
	return sink, nil
}

func decodeOptions(input map[string]interface{}, out interface{}) error {
	if len(input) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("%w: notify.options: %v", core.ErrConfigInvalid, err)
	}
	return nil
}
