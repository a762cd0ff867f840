package types

// ============================================================================
// Document Limits Constants
// ============================================================================
// Bounds applied when parsing and serializing widget documents. Real
// manifests are a few kilobytes with a few dozen elements; the defaults
// leave several orders of magnitude of headroom.

const (
	// MaxDepthDefault is the deepest element nesting accepted by default.
	MaxDepthDefault = 64

	// MaxDepthRelaxed allows deeply nested raw XML fragments.
	MaxDepthRelaxed = 1024

	// MaxDepthStrict is a conservative nesting bound.
	MaxDepthStrict = 16

	// MaxChildrenDefault is the maximum number of direct children per element.
	MaxChildrenDefault = 4096

	// MaxChildrenRelaxed is the relaxed per-element child bound.
	MaxChildrenRelaxed = 1 << 20

	// MaxChildrenStrict is the strict per-element child bound.
	MaxChildrenStrict = 512

	// MaxAttrsDefault is the maximum number of attributes per element.
	MaxAttrsDefault = 256

	// MaxAttrsStrict is the strict per-element attribute bound.
	MaxAttrsStrict = 32

	// MaxTextLen1MB bounds the text content of a single element.
	MaxTextLen1MB = 1 << 20

	// MaxTextLen64KB is the strict text bound.
	MaxTextLen64KB = 64 << 10

	// MaxDocumentSize16MB bounds the raw input size.
	MaxDocumentSize16MB = 16 << 20

	// MaxDocumentSize256MB is the relaxed raw input bound.
	MaxDocumentSize256MB = 256 << 20

	// MaxDocumentSize1MB is the strict raw input bound.
	MaxDocumentSize1MB = 1 << 20
)
