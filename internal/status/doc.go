// Package status implements the repository status command: it assembles the
// configured repository entries, collects per-repository state through git or
// an external status tool, and renders the grouped report.
package status
