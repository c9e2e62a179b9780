package notebook

import "github.com/tidwall/gjson"

// Valid reports whether doc is well-formed JSON. It mirrors the decode step
// that precedes every strip or inspect operation.
func Valid(doc []byte) bool {
	return gjson.ValidBytes(doc)
}

// HasOutputs reports whether at least one cell in the document carries a
// non-empty outputs array or a non-null execution count. A document without
// a cells field reports false. The input is never mutated.
//
// HasOutputs assumes doc is valid JSON; callers that accept untrusted bytes
// should validate first (Strip does, the runner does for check mode).
func HasOutputs(doc []byte) bool {
	found := false
	gjson.GetBytes(doc, "cells").ForEach(func(_, cell gjson.Result) bool {
		if outputs := cell.Get("outputs"); outputs.IsArray() && len(outputs.Array()) > 0 {
			found = true
			return false
		}
		if count := cell.Get("execution_count"); count.Exists() && count.Type != gjson.Null {
			found = true
			return false
		}
		return true
	})
	return found
}
