package paths

import "net/url"

// viewerScheme is the URI scheme understood by the vault's viewer
// application (Obsidian-compatible).
const viewerScheme = "obsidian://open"

// ViewerURL builds a viewer URI for a note, addressing it by vault display
// name and vault-relative path without the file extension. Both components
// are percent-encoded.
//
// Example: ViewerURL("notes", "daily/2026-01-15-Thu") ->
// "obsidian://open?vault=notes&file=daily%2F2026-01-15-Thu"
func ViewerURL(vaultName, relPath string) string {
	return viewerScheme +
		"?vault=" + url.PathEscape(vaultName) +
		"&file=" + url.PathEscape(NormalizeRelPath(relPath))
}
