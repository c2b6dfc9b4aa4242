package pipeline

// Chunk is one contiguous slice of the input text.
type Chunk struct {
	Index  int
	Offset int // rune offset of Text within the full input
	Text   string
}

// Partition splits text into n contiguous chunks of floor(len/n) runes; the
// last chunk also takes the remainder. Concatenating the chunk texts in index
// order reproduces text exactly. n below 1 is treated as 1.
func Partition(text string, n int) []Chunk {
	if n < 1 {
		n = 1
	}
	runes := []rune(text)
	size := len(runes) / n
	chunks := make([]Chunk, n)
	for i := range chunks {
		start := i * size
		end := start + size
		if i == n-1 {
			end = len(runes)
		}
		chunks[i] = Chunk{Index: i, Offset: start, Text: string(runes[start:end])}
	}
	return chunks
}
