// Package gitrepo contains helpers for interrogating local Git repositories.
//
// It exposes RepositoryManager for inspecting branches, working tree
// cleanliness, last commits, and unpushed work through an execshell-backed
// executor.
package gitrepo
