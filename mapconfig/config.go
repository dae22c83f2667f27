package mapconfig

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/adityasaboo10/lut-mapping-optimization/flowmap"
)

// FileConfig mirrors flowmap.Config's fields for YAML/env loading. Node
// IDs in file-backed config are always strings — callers mapping over a
// non-string node type apply Options() against their own
// flowmap.Engine[T] by hand.
type FileConfig struct {
	K                  int      `mapstructure:"k"`
	CutLimit           int      `mapstructure:"cut_limit"`
	Outputs            []string `mapstructure:"outputs"`
	Verbose            bool     `mapstructure:"verbose"`
	VendorPackShortcut bool     `mapstructure:"vendor_pack_shortcut"`
}

// Options converts fc into flowmap.Option[string] values, in the order
// flowmap.NewEngine expects them.
func (fc FileConfig) Options() []flowmap.Option[string] {
	opts := []flowmap.Option[string]{
		flowmap.WithVerbose[string](fc.Verbose),
	}
	if fc.CutLimit > 0 {
		opts = append(opts, flowmap.WithCutLimit[string](fc.CutLimit))
	}
	if len(fc.Outputs) > 0 {
		opts = append(opts, flowmap.WithOutputs[string](fc.Outputs))
	}
	if fc.VendorPackShortcut {
		opts = append(opts, flowmap.WithVendorPackShortcut[string]())
	}
	return opts
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("cut_limit", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("vendor_pack_shortcut", false)
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (FileConfig, error) {
	var fc FileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return FileConfig{}, fmt.Errorf("mapconfig: decode: %w", err)
	}
	if fc.K < 1 {
		return FileConfig{}, ErrInvalidK
	}
	return fc, nil
}

// Load reads and validates a FileConfig from path.
func Load(path string) (FileConfig, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return FileConfig{}, fmt.Errorf("%w: %s: %v", ErrNoSuchFile, path, err)
	}
	return decode(v)
}

// Watch loads path once, then watches its containing directory for
// writes via viper's WatchConfig (fsnotify-backed). Every successful
// reload is pushed to the returned channel; decode failures are dropped
// with the prior value kept live, since a transient partial write should
// never starve a long-lived caller of its last-known-good FileConfig.
// The returned stop function closes the channel and ends further pushes;
// it does not stop viper's underlying file watcher. It is safe to call
// more than once.
func Watch(path string) (FileConfig, <-chan FileConfig, func(), error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return FileConfig{}, nil, nil, fmt.Errorf("%w: %s: %v", ErrNoSuchFile, path, err)
	}
	initial, err := decode(v)
	if err != nil {
		return FileConfig{}, nil, nil, err
	}

	ch := make(chan FileConfig, 1)
	var mu sync.Mutex
	stopped := false
	v.OnConfigChange(func(_ fsnotify.Event) {
		fc, err := decode(v)
		if err != nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		select {
		case ch <- fc:
		default:
			// Drop the stale pending value before pushing the fresh one,
			// so a slow reader only ever sees the latest FileConfig.
			select {
			case <-ch:
			default:
			}
			ch <- fc
		}
	})
	v.WatchConfig()

	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		stopped = true
		close(ch)
	}

	return initial, ch, stop, nil
}
