// Package notebook implements the core notebook transformations: stripping
// execution outputs and volatile metadata from Jupyter notebook documents,
// and inspecting documents for remaining outputs.
//
// Documents are handled as raw JSON bytes rather than decoded into Go maps.
// Go maps do not preserve object key order, and stripped notebooks must be
// byte-identical to the input outside the stripped fields. All reads go
// through gjson and all writes through sjson, which splice values in place
// and leave every untouched byte alone.
package notebook
