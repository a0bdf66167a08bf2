// Package utils hosts shared infrastructure for the galias CLI: the viper-backed
// configuration loader and the zap logger factory.
package utils
