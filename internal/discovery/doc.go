// Package discovery locates git repositories beneath configured root directories.
package discovery
