// Package processor contains the run logic of phonewords. It loads the
// dictionary index once, streams the phone-number file line by line through
// the translator and hands every translation to the configured output
// sinks, keeping the input order of the numbers.
package processor
