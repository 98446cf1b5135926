package ports

// Segmenter defines the interface for splitting a raw identifier into a
// space-delimited sequence of word tokens.
type Segmenter interface {
	Segment(text string) string
}
