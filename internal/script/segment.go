package script

import "regexp"

// arabicRuns matches maximal runs of Arabic-block code points. The pattern
// is anchored on the Arabic block only, so whitespace and punctuation
// always fall into the surrounding LTR chunks.
var arabicRuns = regexp.MustCompile(`[\x{0600}-\x{06FF}]+`)

// Segment partitions text into maximal same-script chunks in source order.
// Every character of the input belongs to exactly one chunk and chunk
// boundaries occur only at script transitions: no two consecutive chunks
// share a script. Empty input yields no chunks.
func Segment(text string) []Chunk {
	if text == "" {
		return nil
	}

	matches := arabicRuns.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Chunk{{Text: text, Script: LTR}}
	}

	chunks := make([]Chunk, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			chunks = append(chunks, Chunk{Text: text[last:m[0]], Script: LTR})
		}
		chunks = append(chunks, Chunk{Text: text[m[0]:m[1]], Script: RTL})
		last = m[1]
	}
	if last < len(text) {
		chunks = append(chunks, Chunk{Text: text[last:], Script: LTR})
	}

	return chunks
}
