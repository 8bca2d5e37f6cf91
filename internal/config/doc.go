// Package config resolves stacky configuration.
//
// It handles:
//   - Reading INI-style .stackyconfig files (system, user, repository)
//   - Folding them in precedence order, later files overriding earlier ones key by key
//   - Defaults for settings no file mentions
package config
