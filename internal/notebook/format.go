package notebook

import "github.com/tidwall/pretty"

// formatOptions matches the serialization contract for stripped notebooks:
// one space per nesting level, every element on its own line (Width 0
// disables single-line packing), key order preserved, non-ASCII bytes
// passed through literally. pretty appends exactly one trailing newline.
var formatOptions = &pretty.Options{
	Indent: " ",
	Width:  0,
}

// Format re-serializes a notebook document with stable indentation.
// The result ends with exactly one newline.
func Format(doc []byte) []byte {
	return pretty.PrettyOptions(doc, formatOptions)
}
