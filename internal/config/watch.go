package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch observes the config file and calls onChange with every edit that loads
// and validates. Edits that fail are passed to onError and otherwise ignored.
func Watch(path string, onChange func(*GlobalConfig), onError func(error)) error {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}

		// viper keeps the previous values when a read fails, so load from disk again.
		cfg, err := Load(path)
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()

	return nil
}
