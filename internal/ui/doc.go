// Package ui formats external command lifecycle events for human-readable
// console output.
package ui
