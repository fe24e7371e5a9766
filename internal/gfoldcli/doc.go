// Package gfoldcli wraps the external gfold status tool.
//
// It exposes Client for capturing per-repository status reports, treating
// gfold output as opaque text to relay rather than data to interpret.
package gfoldcli
