package ast

// PathSeparator joins tag names in element paths reported by LimitError.
const PathSeparator = "/"
