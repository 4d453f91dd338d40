package sequence

// ChunkWidth is the number of symbols shown per line.
const ChunkWidth = 50

// Chunk splits s into consecutive pieces of at most width runes.
// The last piece may be shorter. An empty string yields no chunks.
func Chunk(s string, width int) []string {
	if s == "" {
		return nil
	}
	if width <= 0 {
		return []string{s}
	}

	runes := []rune(s)
	chunks := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := min(start+width, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
