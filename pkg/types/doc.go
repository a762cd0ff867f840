// Package types defines the error categories and document limits shared by
// the widgetkit packages.
//
// Errors carry a stable ErrKind so callers can branch on intent rather than
// text:
//
//	doc, err := widget.Open("config.xml")
//	if errors.Is(err, types.ErrRootTag) {
//		// not a widget manifest
//	}
//
// This package has no dependencies beyond the standard library.
package types
