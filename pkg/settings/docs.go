// Package settings provides configuration management for the palette
// synthesis engine using Viper for flexible, layered configuration support.
//
// Configuration Sources and Precedence:
//  1. Built-in defaults
//  2. One config file: the first palettegen.json found when searching
//     /etc/omarchy, then $XDG_CONFIG_HOME/omarchy, then the working
//     directory (or the file named by OMARCHY_PALETTE_CONFIG). Files in
//     later search locations are not read and files are not merged.
//  3. Environment variables: OMARCHY_PALETTE_*
//
// Usage:
//
//	s, err := settings.Load()
//	ctx := settings.WithSettings(context.Background(), s)
//	s = settings.FromContext(ctx)
package settings
