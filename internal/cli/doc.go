// Package cli provides command-line interface setup and configuration
// for the phonewords application. It handles flag parsing, command
// creation, configuration management using cobra and viper, and the
// construction of the run's logger.
package cli
