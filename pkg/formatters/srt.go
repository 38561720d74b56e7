package formatters

import "github.com/patrickprogramme/subformat/pkg/model"

var srtLayout = cueLayout{msSep: ',', withIndex: true}

// SRTFormatter rend un transcript au format SubRip.
type SRTFormatter struct{}

func NewSRTFormatter() *SRTFormatter {
	return &SRTFormatter{}
}

func (f *SRTFormatter) FormatTranscript(t model.FetchedTranscript) (string, error) {
	return renderCues(t, srtLayout)
}

func (f *SRTFormatter) FormatTranscripts(ts []model.FetchedTranscript) (string, error) {
	return joinTranscripts(ts, f.FormatTranscript)
}
