package notebook

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	t.Run("indents one space per level", func(t *testing.T) {
		t.Parallel()
		got := Format([]byte(`{"a":{"b":[1,2]}}`))
		want := `{
 "a": {
  "b": [
   1,
   2
  ]
 }
}
`
		if string(got) != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("keeps empty containers inline", func(t *testing.T) {
		t.Parallel()
		got := Format([]byte(`{"outputs":[],"metadata":{}}`))
		want := `{
 "outputs": [],
 "metadata": {}
}
`
		if string(got) != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("preserves key order", func(t *testing.T) {
		t.Parallel()
		got := string(Format([]byte(`{"z":1,"a":2,"m":3}`)))
		if !(strings.Index(got, `"z"`) < strings.Index(got, `"a"`) &&
			strings.Index(got, `"a"`) < strings.Index(got, `"m"`)) {
			t.Errorf("expected insertion order z, a, m, got:\n%s", got)
		}
	})

	t.Run("passes non-ASCII through literally", func(t *testing.T) {
		t.Parallel()
		got := Format([]byte(`{"source":["print('héllo ☃')"]}`))
		if !bytes.Contains(got, []byte("héllo ☃")) {
			t.Errorf("expected literal non-ASCII in output, got:\n%s", got)
		}
		if bytes.Contains(got, []byte(`\u`)) {
			t.Errorf("expected no unicode escapes, got:\n%s", got)
		}
	})

	t.Run("ends with exactly one newline", func(t *testing.T) {
		t.Parallel()
		got := Format([]byte(`{"a":1}`))
		if !bytes.HasSuffix(got, []byte("}\n")) {
			t.Errorf("expected a single trailing newline, got %q", got)
		}
	})
}
