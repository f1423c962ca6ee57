// Package manifest reads rename manifests and parses their lines into
// RenamePair values.
//
// A manifest is a plain text file with one `transformed=original` mapping per
// line. Reading is best effort: lines that are not valid UTF-8 are dropped
// without being reported, and parsing never fails. Blank lines are kept and
// parse to an empty pair. Lines without a delimiter produce a degenerate pair
// whose original name is empty; callers decide what to do with those.
package manifest
