package formatters

import "github.com/patrickprogramme/subformat/pkg/model"

var webvttLayout = cueLayout{header: "WEBVTT\n\n", msSep: '.'}

// WebVTTFormatter rend un transcript au format WebVTT (en-tête "WEBVTT", cues sans index).
type WebVTTFormatter struct{}

func NewWebVTTFormatter() *WebVTTFormatter {
	return &WebVTTFormatter{}
}

func (f *WebVTTFormatter) FormatTranscript(t model.FetchedTranscript) (string, error) {
	return renderCues(t, webvttLayout)
}

func (f *WebVTTFormatter) FormatTranscripts(ts []model.FetchedTranscript) (string, error) {
	return joinTranscripts(ts, f.FormatTranscript)
}
