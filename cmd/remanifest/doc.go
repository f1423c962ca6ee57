// Package main hosts the remanifest CLI entrypoint and command graph.
//
// The root command applies the rename manifest found in a directory, forward
// by default or in reverse with -r, and optionally deletes the manifest with
// -m. Configuration resolution, logger setup and output rendering live here;
// the rename logic itself lives in internal/renamer.
package main
