// Package pydist answers "which version of distribution X is installed?".
// It provides two registry backends: one that asks pip for the full list of
// installed distributions, and one that scans site-packages metadata
// directories directly.
package pydist
