package notebook

import (
	"bytes"
	"testing"
)

func TestHasOutputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{
			name: "cell with outputs",
			doc:  `{"cells":[{"outputs":[{"type":"stream"}],"execution_count":null}]}`,
			want: true,
		},
		{
			name: "cell with execution count only",
			doc:  `{"cells":[{"outputs":[],"execution_count":7}]}`,
			want: true,
		},
		{
			name: "later cell dirty",
			doc:  `{"cells":[{"outputs":[]},{"outputs":["x"]}]}`,
			want: true,
		},
		{
			name: "clean cells",
			doc:  `{"cells":[{"outputs":[],"execution_count":null}]}`,
			want: false,
		},
		{
			name: "cells without execution fields",
			doc:  `{"cells":[{"cell_type":"markdown","source":[]}]}`,
			want: false,
		},
		{
			name: "no cells field",
			doc:  `{"metadata":{}}`,
			want: false,
		},
		{
			name: "empty cells",
			doc:  `{"cells":[]}`,
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HasOutputs([]byte(tt.doc)); got != tt.want {
				t.Errorf("HasOutputs(%s) = %v, want %v", tt.doc, got, tt.want)
			}
		})
	}

	t.Run("does not mutate the document", func(t *testing.T) {
		t.Parallel()
		doc := []byte(`{"cells":[{"outputs":[{"x":1}],"execution_count":2}]}`)
		orig := bytes.Clone(doc)
		HasOutputs(doc)
		if !bytes.Equal(doc, orig) {
			t.Error("expected document to be unchanged")
		}
	})
}
