package match

import "strings"

// SplitExt splits a filename at its final dot. The extension includes the
// dot; a dotless name has an empty extension and a base equal to the whole
// name. Unlike filepath.Ext this operates on a single path component, so
// dots anywhere in the name qualify.
func SplitExt(name string) (base, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// IsExtensionChange reports whether old and new share an identical base and
// differ only in the extension after the final dot.
//
// Only the last dot is an extension boundary, so "file.tar.gz" and
// "file.tar.bz2" share the base "file.tar". Dotless names never
// participate: adding an extension to a bare name is the expansion
// matcher's territory, and collapsing an extension away is never inferred
// at all.
func IsExtensionChange(old, new string) bool {
	if old == new {
		return false
	}

	oldBase, oldExt := SplitExt(old)
	newBase, newExt := SplitExt(new)
	if oldExt == "" || newExt == "" {
		return false
	}

	// The extensions must actually differ; equal extensions with equal
	// bases are the identical-name case already rejected above, kept as an
	// explicit check.
	return oldBase == newBase && oldExt != newExt
}
