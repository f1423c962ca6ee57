// Package textutil holds the Unicode name normalization used by the rename
// engine.
//
// The main entry point is Normalize, which rewrites manifest names into a
// Unicode normalization form before they are resolved on disk. Manifests
// produced on one platform (NFD on macOS, NFC almost everywhere else) can then
// be applied on another without byte-level mismatches. The default form,
// FormNone, leaves names untouched.
package textutil
