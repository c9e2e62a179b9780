package notebook

import (
	"errors"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrInvalidNotebook is returned when the input is not valid JSON.
// The tool trusts its inputs to be well-formed notebook documents and
// treats structural corruption as unrecoverable, so callers are expected
// to propagate this error rather than handle it.
var ErrInvalidNotebook = errors.New("invalid notebook JSON")

// cellMetadataDenylist contains the cell-level metadata keys removed by
// Strip. The list is fixed: it tracks the known noisy fields of the
// Jupyter ecosystem (collapse state, timing extensions, and so on), not
// any notion of completeness. Do not extend it speculatively.
var cellMetadataDenylist = []string{
	"collapsed",
	"scrolled",
	"ExecuteTime",
	"execution",
	"heading_collapsed",
	"hidden",
}

// documentMetadataDenylist contains the document-level metadata keys
// removed by Strip.
var documentMetadataDenylist = []string{
	"signature",
	"widgets",
}

// Strip removes execution results and volatile metadata from a notebook
// document and returns the stripped document.
//
// For every cell: an existing outputs field becomes an empty array, an
// existing execution_count field becomes null, and the denylisted keys are
// removed from the cell metadata. Fields that are absent are never added.
// At the document level, the signature and widgets metadata keys are
// removed. Everything else, including object key order, is preserved
// byte-for-byte.
//
// Strip is a pure transformation of its input slice; the returned slice
// may share memory with doc, so callers must not reuse doc afterwards.
func Strip(doc []byte) ([]byte, error) {
	if !gjson.ValidBytes(doc) {
		return nil, ErrInvalidNotebook
	}

	var err error
	cells := gjson.GetBytes(doc, "cells")
	if cells.IsArray() {
		n := int(cells.Get("#").Int())
		for i := 0; i < n; i++ {
			cell := "cells." + strconv.Itoa(i)

			if gjson.GetBytes(doc, cell+".outputs").Exists() {
				doc, err = sjson.SetRawBytes(doc, cell+".outputs", []byte("[]"))
				if err != nil {
					return nil, err
				}
			}
			if gjson.GetBytes(doc, cell+".execution_count").Exists() {
				doc, err = sjson.SetRawBytes(doc, cell+".execution_count", []byte("null"))
				if err != nil {
					return nil, err
				}
			}
			if gjson.GetBytes(doc, cell+".metadata").IsObject() {
				for _, key := range cellMetadataDenylist {
					path := cell + ".metadata." + key
					if !gjson.GetBytes(doc, path).Exists() {
						continue
					}
					doc, err = sjson.DeleteBytes(doc, path)
					if err != nil {
						return nil, err
					}
				}
			}
		}
	}

	if gjson.GetBytes(doc, "metadata").IsObject() {
		for _, key := range documentMetadataDenylist {
			path := "metadata." + key
			if !gjson.GetBytes(doc, path).Exists() {
				continue
			}
			doc, err = sjson.DeleteBytes(doc, path)
			if err != nil {
				return nil, err
			}
		}
	}

	return doc, nil
}
