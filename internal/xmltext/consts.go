package xmltext

const (
	// ============================================================================
	// Output Format Tokens
	// ============================================================================

	// Declaration is the XML declaration written before the root element.
	Declaration = "<?xml version='1.0' encoding='utf-8'?>"

	// DefaultIndent is the number of spaces per nesting level.
	DefaultIndent = 4

	// LF terminates every emitted line.
	LF = "\n"

	// SelfClose ends an element with no text and no children.
	SelfClose = " />"

	// ============================================================================
	// Input Handling
	// ============================================================================

	// MarkupStart is the first byte of any markup; input before it is dropped.
	MarkupStart = '<'

	// utf16Label prefixes charset labels that BOM decoding has already handled.
	utf16Label = "utf-16"
)
