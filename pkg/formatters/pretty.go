package formatters

import (
	"github.com/patrickprogramme/subformat/internal/pprint"
	"github.com/patrickprogramme/subformat/pkg/model"
)

// PrettyPrintFormatter est une vue directe de la forme structurelle via pprint,
// sans règle de mise en forme supplémentaire.
type PrettyPrintFormatter struct{}

func NewPrettyPrintFormatter() *PrettyPrintFormatter {
	return &PrettyPrintFormatter{}
}

func (f *PrettyPrintFormatter) FormatTranscript(t model.FetchedTranscript) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return pprint.Format(t.ToRawData()), nil
}

func (f *PrettyPrintFormatter) FormatTranscripts(ts []model.FetchedTranscript) (string, error) {
	if err := validateAll(ts); err != nil {
		return "", err
	}
	raws := make([]model.RawData, 0, len(ts))
	for _, t := range ts {
		raws = append(raws, t.ToRawData())
	}
	return pprint.Format(raws), nil
}
