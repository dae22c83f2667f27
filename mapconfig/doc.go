// Package mapconfig loads flowmap.Config values from a YAML file and
// environment overrides via github.com/spf13/viper, and can optionally
// watch that file for changes, pushing updated values to a channel — an
// additive convenience layer, never a requirement: flowmap.NewEngine
// always accepts direct functional options without this package.
//
// Watch mode drives viper's own WatchConfig/OnConfigChange, which wraps
// fsnotify on the config file's containing directory — the standard way
// to tolerate editors that replace a file via rename rather than an
// in-place write.
package mapconfig
