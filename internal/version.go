package internal

// Version is the current phonewords release.
const Version = "0.3.0"
