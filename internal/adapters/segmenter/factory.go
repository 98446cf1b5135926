package segmenter

import "github.com/baditaflorin/go_name_cleaner/internal/ports"

// SegmenterFactory creates the appropriate segmenter based on performance
// requirements.
type SegmenterFactory struct{}

// NewSegmenterFactory creates a new segmenter factory.
func NewSegmenterFactory() *SegmenterFactory {
	return &SegmenterFactory{}
}

// SegmenterType selects the segmentation implementation to create.
type SegmenterType int

const (
	// DefaultSegmenterType is the regex-based segmenter.
	DefaultSegmenterType SegmenterType = iota
	// OptimizedSegmenterType uses a single-pass scan with buffer pooling.
	OptimizedSegmenterType
)

// CreateSegmenter creates a segmenter of the specified type.
func (f *SegmenterFactory) CreateSegmenter(segmenterType SegmenterType) ports.Segmenter {
	switch segmenterType {
	case OptimizedSegmenterType:
		return NewOptimizedSegmenter()
	default:
		return NewDefaultSegmenter()
	}
}
