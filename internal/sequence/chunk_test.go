package sequence

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{"empty", "", 50, nil},
		{"shorter than width", "ARND", 50, []string{"ARND"}},
		{"exact", "ARND", 2, []string{"AR", "ND"}},
		{"remainder", "ARNDC", 2, []string{"AR", "ND", "C"}},
		{"non-positive width", "ARND", 0, []string{"ARND"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Chunk(tt.input, tt.width)); diff != "" {
				t.Errorf("Chunk(%q, %d) mismatch (-want +got):\n%s", tt.input, tt.width, diff)
			}
		})
	}
}

func TestChunkRoundTripAndCount(t *testing.T) {
	alphabet := "ARNDCEQGHILKMFPSTWYV-"
	for n := 0; n <= 3*ChunkWidth+7; n++ {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(alphabet[i%len(alphabet)])
		}
		s := b.String()

		chunks := Chunk(s, ChunkWidth)
		if got := strings.Join(chunks, ""); got != s {
			t.Fatalf("n=%d: concatenated chunks = %q, want %q", n, got, s)
		}
		wantCount := (n + ChunkWidth - 1) / ChunkWidth
		if len(chunks) != wantCount {
			t.Fatalf("n=%d: got %d chunks, want %d", n, len(chunks), wantCount)
		}
		for i, c := range chunks[:max(0, len(chunks)-1)] {
			if len(c) != ChunkWidth {
				t.Fatalf("n=%d: chunk %d has length %d, want %d", n, i, len(c), ChunkWidth)
			}
		}
	}
}
