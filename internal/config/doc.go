// Package config loads the tabata configuration file.
//
// The file lives at ~/.config/tabata/config.toml and supplies the default
// interval settings the timer boots with, the preferred theme, and the serve
// command's listen address and static asset directory. A missing file is not
// an error; every field has a sensible default.
package config
