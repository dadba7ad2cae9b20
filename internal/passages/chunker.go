package passages

import "strings"

// maxChunkSize bounds the character length of a stored passage chunk.
const maxChunkSize = 2000

// Chunk is an in-memory passage segment produced by the chunker before storage.
type Chunk struct {
	Page    int
	Content string
}

// Split divides extracted document text into storage-sized chunks.
// Form feeds mark page boundaries. Within a page, paragraphs are packed
// into chunks up to maxChunkSize; oversized paragraphs are hard-split.
func Split(text string) []Chunk {
	var chunks []Chunk

	for pageIdx, pageText := range strings.Split(text, "\f") {
		page := pageIdx + 1

		var current strings.Builder
		flush := func() {
			content := strings.TrimSpace(current.String())
			if content != "" {
				chunks = append(chunks, Chunk{Page: page, Content: content})
			}
			current.Reset()
		}

		for _, para := range splitParagraphs(pageText) {
			if len(para) > maxChunkSize {
				flush()
				for _, piece := range hardSplit(para, maxChunkSize) {
					chunks = append(chunks, Chunk{Page: page, Content: piece})
				}
				continue
			}

			if current.Len() > 0 && current.Len()+len(para)+2 > maxChunkSize {
				flush()
			}
			if current.Len() > 0 {
				current.WriteString("\n\n")
			}
			current.WriteString(para)
		}
		flush()
	}

	return chunks
}

func splitParagraphs(text string) []string {
	var paras []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

func hardSplit(text string, size int) []string {
	var pieces []string
	for len(text) > size {
		cut := size
		if idx := strings.LastIndexAny(text[:size], " \n"); idx > size/2 {
			cut = idx
		}
		pieces = append(pieces, strings.TrimSpace(text[:cut]))
		text = strings.TrimSpace(text[cut:])
	}
	if text != "" {
		pieces = append(pieces, text)
	}
	return pieces
}
