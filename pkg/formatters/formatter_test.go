package formatters

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/patrickprogramme/subformat/internal/pprint"
	"github.com/patrickprogramme/subformat/pkg/model"
)

func testTranscript() model.FetchedTranscript {
	return model.NewFetchedTranscript("12345", "English", "en", true, []model.Snippet{
		{Text: "Test line 1", Start: 0.0, Duration: 1.50},
		{Text: "line between", Start: 1.5, Duration: 2.0},
		{Text: "testing the end line", Start: 2.5, Duration: 3.25},
	})
}

func mustFormat(t *testing.T, f Formatter, tr model.FetchedTranscript) string {
	t.Helper()
	out, err := f.FormatTranscript(tr)
	if err != nil {
		t.Fatalf("FormatTranscript: %v", err)
	}
	return out
}

func TestBaseFormatterNotImplemented(t *testing.T) {
	tr := testTranscript()
	if _, err := (Base{}).FormatTranscript(tr); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Base.FormatTranscript error = %v; want ErrNotImplemented", err)
	}
	if _, err := (Base{}).FormatTranscripts([]model.FetchedTranscript{tr}); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Base.FormatTranscripts error = %v; want ErrNotImplemented", err)
	}
}

func TestSRTFormatter(t *testing.T) {
	tr := testTranscript()
	raw := tr.ToRawData()
	lines := strings.Split(mustFormat(t, NewSRTFormatter(), tr), "\n")

	checks := []struct {
		name string
		idx  int
		want string
	}{
		{"first index", 0, "1"},
		{"first timing", 1, "00:00:00,000 --> 00:00:01,500"},
		{"second index", 4, "2"},
		{"second timing", 5, "00:00:01,500 --> 00:00:02,500"},
		{"second text", 6, raw[1]["text"].(string)},
		{"last text", len(lines) - 2, raw[2]["text"].(string)},
		{"trailing blank", len(lines) - 1, ""},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if lines[c.idx] != c.want {
				t.Fatalf("line %d = %q; want %q", c.idx, lines[c.idx], c.want)
			}
		})
	}
}

func TestSRTFormatterFullDocument(t *testing.T) {
	want := "1\n00:00:00,000 --> 00:00:01,500\nTest line 1\n\n" +
		"2\n00:00:01,500 --> 00:00:02,500\nline between\n\n" +
		"3\n00:00:02,500 --> 00:00:05,750\ntesting the end line\n"
	if got := mustFormat(t, NewSRTFormatter(), testTranscript()); got != want {
		t.Fatalf("SRT =\n%q\nwant\n%q", got, want)
	}
}

func TestWebVTTFormatter(t *testing.T) {
	tr := testTranscript()
	content := mustFormat(t, NewWebVTTFormatter(), tr)
	lines := strings.Split(content, "\n")

	if lines[0] != "WEBVTT" || lines[1] != "" {
		t.Fatalf("header lines = %q, %q", lines[0], lines[1])
	}
	if lines[2] != "00:00:00.000 --> 00:00:01.500" {
		t.Fatalf("first cue timing = %q", lines[2])
	}
	if lines[len(lines)-2] != "testing the end line" || lines[len(lines)-1] != "" {
		t.Fatalf("ending lines = %q, %q", lines[len(lines)-2], lines[len(lines)-1])
	}
	if strings.Contains(content, "\n1\n") {
		t.Fatalf("WebVTT cues must not be numbered:\n%s", content)
	}
}

func TestCueEndClampedToNextStart(t *testing.T) {
	tr := model.NewFetchedTranscript("v", "English", "en", false, []model.Snippet{
		{Text: "a", Start: 0, Duration: 4},
		{Text: "b", Start: 1, Duration: 1},
		{Text: "c", Start: 2, Duration: 0.5},
		{Text: "d", Start: 3, Duration: 2},
	})

	tests := []struct {
		name string
		f    Formatter
		want string
	}{
		{"srt", NewSRTFormatter(),
			"1\n00:00:00,000 --> 00:00:01,000\na\n\n" +
				"2\n00:00:01,000 --> 00:00:02,000\nb\n\n" +
				"3\n00:00:02,000 --> 00:00:02,500\nc\n\n" +
				"4\n00:00:03,000 --> 00:00:05,000\nd\n"},
		{"webvtt", NewWebVTTFormatter(),
			"WEBVTT\n\n" +
				"00:00:00.000 --> 00:00:01.000\na\n\n" +
				"00:00:01.000 --> 00:00:02.000\nb\n\n" +
				"00:00:02.000 --> 00:00:02.500\nc\n\n" +
				"00:00:03.000 --> 00:00:05.000\nd\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := mustFormat(t, tc.f, tr); got != tc.want {
				t.Fatalf("got\n%q\nwant\n%q", got, tc.want)
			}
		})
	}
}

func TestTextFormatter(t *testing.T) {
	tr := testTranscript()
	content := mustFormat(t, NewTextFormatter(), tr)
	if content != "Test line 1\nline between\ntesting the end line" {
		t.Fatalf("text = %q", content)
	}
}

func TestLineJoinedBatchIdentity(t *testing.T) {
	tr := testTranscript()
	for name, f := range map[string]Formatter{
		"srt":    NewSRTFormatter(),
		"webvtt": NewWebVTTFormatter(),
		"text":   NewTextFormatter(),
	} {
		t.Run(name, func(t *testing.T) {
			single := mustFormat(t, f, tr)
			many, err := f.FormatTranscripts([]model.FetchedTranscript{tr, tr})
			if err != nil {
				t.Fatalf("FormatTranscripts: %v", err)
			}
			if many != single+"\n\n\n"+single {
				t.Fatalf("batch != single + separator + single:\n%q", many)
			}
		})
	}
}

func TestLineJoinedBatchKeepsOrder(t *testing.T) {
	a := model.NewFetchedTranscript("a", "English", "en", false, []model.Snippet{{Text: "first"}})
	b := model.NewFetchedTranscript("b", "English", "en", false, []model.Snippet{{Text: "second"}})
	out, err := NewTextFormatter().FormatTranscripts([]model.FetchedTranscript{a, b})
	if err != nil {
		t.Fatalf("FormatTranscripts: %v", err)
	}
	if out != "first\n\n\nsecond" {
		t.Fatalf("batch = %q", out)
	}
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	tr := testTranscript()
	content := mustFormat(t, NewJSONFormatter(), tr)

	var got []map[string]any
	if err := json.Unmarshal([]byte(content), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(model.RawData(got), tr.ToRawData()) {
		t.Fatalf("round trip = %#v; want %#v", got, tr.ToRawData())
	}
}

func TestJSONFormatterMany(t *testing.T) {
	tr := testTranscript()
	content, err := NewJSONFormatter(WithIndent("", "  ")).FormatTranscripts([]model.FetchedTranscript{tr, tr})
	if err != nil {
		t.Fatalf("FormatTranscripts: %v", err)
	}

	var got [][]map[string]any
	if err := json.Unmarshal([]byte(content), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d documents; want 2", len(got))
	}
	for i := range got {
		if !reflect.DeepEqual(model.RawData(got[i]), tr.ToRawData()) {
			t.Fatalf("document %d = %#v", i, got[i])
		}
	}
}

func TestJSONFormatterKeepsPrecisionAndMarkup(t *testing.T) {
	// calcul à l'exécution : une expression constante serait exacte (0.3)
	a, b, third := 0.1, 0.2, 1.0
	tr := model.NewFetchedTranscript("v", "English", "en", false, []model.Snippet{
		{Text: "<i>a & b</i>", Start: a + b, Duration: third / 3},
	})
	content := mustFormat(t, NewJSONFormatter(), tr)
	want := `[{"duration":0.3333333333333333,"start":0.30000000000000004,"text":"<i>a & b</i>"}]`
	if content != want {
		t.Fatalf("json = %s; want %s", content, want)
	}
}

func TestPrettyPrintFormatter(t *testing.T) {
	tr := testTranscript()
	if got := mustFormat(t, NewPrettyPrintFormatter(), tr); got != pprint.Format(tr.ToRawData()) {
		t.Fatalf("pretty = %q", got)
	}

	many, err := NewPrettyPrintFormatter().FormatTranscripts([]model.FetchedTranscript{tr, tr})
	if err != nil {
		t.Fatalf("FormatTranscripts: %v", err)
	}
	if many != pprint.Format([]model.RawData{tr.ToRawData(), tr.ToRawData()}) {
		t.Fatalf("pretty many = %q", many)
	}
}

func TestEmptyTranscript(t *testing.T) {
	empty := model.NewFetchedTranscript("v", "English", "en", false, nil)
	tests := []struct {
		f    Formatter
		want string
	}{
		{NewSRTFormatter(), "\n"},
		{NewWebVTTFormatter(), "WEBVTT\n\n\n"},
		{NewTextFormatter(), ""},
		{NewJSONFormatter(), "[]"},
		{NewPrettyPrintFormatter(), "[]"},
	}
	for _, tc := range tests {
		if got := mustFormat(t, tc.f, empty); got != tc.want {
			t.Errorf("%T on empty transcript = %q; want %q", tc.f, got, tc.want)
		}
	}
}

func TestFormattersRejectMalformedSnippets(t *testing.T) {
	bad := model.NewFetchedTranscript("v", "English", "en", false, []model.Snippet{
		{Text: "ok", Start: 0, Duration: 1},
		{Text: "broken", Start: math.NaN(), Duration: 1},
	})
	for _, name := range Names() {
		f, err := NewLoader().Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if _, err := f.FormatTranscript(bad); !errors.Is(err, model.ErrInvalidSnippet) {
			t.Errorf("%s FormatTranscript error = %v; want ErrInvalidSnippet", name, err)
		}
		if _, err := f.FormatTranscripts([]model.FetchedTranscript{testTranscript(), bad}); !errors.Is(err, model.ErrInvalidSnippet) {
			t.Errorf("%s FormatTranscripts error = %v; want ErrInvalidSnippet", name, err)
		}
	}
}

func TestCueFormattersRejectUnrepresentableTimes(t *testing.T) {
	huge := model.NewFetchedTranscript("v", "English", "en", false, []model.Snippet{
		{Text: "far away", Start: 1e16, Duration: 1},
	})
	for _, f := range []Formatter{NewSRTFormatter(), NewWebVTTFormatter()} {
		if out, err := f.FormatTranscript(huge); !errors.Is(err, model.ErrInvalidSnippet) {
			t.Errorf("%T = %q, %v; want ErrInvalidSnippet", f, out, err)
		}
	}
}

func TestFormattersDoNotMutateInput(t *testing.T) {
	tr := testTranscript()
	before := tr.ToRawData()
	for _, name := range Names() {
		f, _ := NewLoader().Load(name)
		_, _ = f.FormatTranscripts([]model.FetchedTranscript{tr, tr})
	}
	if !reflect.DeepEqual(before, tr.ToRawData()) {
		t.Fatalf("input transcript was modified")
	}
}

func TestFormattersConcurrentUse(t *testing.T) {
	f := NewSRTFormatter()
	tr := testTranscript()
	want := mustFormat(t, f, tr)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.FormatTranscript(tr)
			if err != nil || got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent render differs: %q", got)
	}
}
