package pprint

import (
	"math"
	"strings"
	"testing"
)

func TestFormatScalars(t *testing.T) {
	// addition en float64 à l'exécution (0.1 + 0.2 constant vaudrait exactement 0.3)
	a, b := 0.1, 0.2
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "nil"},
		{"string", "hé \"ho\"", `"hé \"ho\""`},
		{"bool", true, "true"},
		{"int", 42, "42"},
		{"integral float", 0.0, "0.0"},
		{"float", 3.25, "3.25"},
		{"precise float", a + b, "0.30000000000000004"},
		{"big float", 1e21, "1e+21"},
		{"inf", math.Inf(1), "+Inf"},
		{"nil slice", []string(nil), "[]"},
		{"empty map", map[string]any{}, "{}"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.in); got != tc.want {
				t.Fatalf("Format(%#v) = %q; want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatSortsMapKeys(t *testing.T) {
	in := map[string]any{"text": "a", "start": 1.0, "duration": 2.0}
	want := `{"duration": 2.0, "start": 1.0, "text": "a"}`
	for i := 0; i < 20; i++ {
		if got := Format(in); got != want {
			t.Fatalf("Format() = %q; want %q", got, want)
		}
	}
}

func TestFormatBreaksLongSequences(t *testing.T) {
	in := []map[string]any{
		{"text": "Test line 1", "start": 0.0, "duration": 1.5},
		{"text": "line between", "start": 1.5, "duration": 2.0},
		{"text": "testing the end line", "start": 2.5, "duration": 3.25},
	}
	want := strings.Join([]string{
		`[{"duration": 1.5, "start": 0.0, "text": "Test line 1"},`,
		` {"duration": 2.0, "start": 1.5, "text": "line between"},`,
		` {"duration": 3.25, "start": 2.5, "text": "testing the end line"}]`,
	}, "\n")

	if got := Format(in); got != want {
		t.Fatalf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatNestedSequences(t *testing.T) {
	one := []map[string]any{
		{"text": "Test line 1", "start": 0.0, "duration": 1.5},
		{"text": "testing the end line", "start": 2.5, "duration": 3.25},
	}
	got := Format([][]map[string]any{one, one})
	want := strings.Join([]string{
		`[[{"duration": 1.5, "start": 0.0, "text": "Test line 1"},`,
		`  {"duration": 3.25, "start": 2.5, "text": "testing the end line"}],`,
		` [{"duration": 1.5, "start": 0.0, "text": "Test line 1"},`,
		`  {"duration": 3.25, "start": 2.5, "text": "testing the end line"}]]`,
	}, "\n")
	if got != want {
		t.Fatalf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatBreaksLongMaps(t *testing.T) {
	in := map[string]string{
		"beta":  strings.Repeat("b", 40),
		"alpha": strings.Repeat("a", 40),
	}
	want := `{"alpha": "` + strings.Repeat("a", 40) + `",` + "\n" +
		` "beta": "` + strings.Repeat("b", 40) + `"}`
	if got := Format(in); got != want {
		t.Fatalf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatStruct(t *testing.T) {
	type cue struct {
		Text   string
		Start  float64
		hidden int
	}
	got := Format(&cue{Text: "hello", Start: 1, hidden: 3})
	if got != `cue{Text: "hello", Start: 1.0}` {
		t.Fatalf("Format(struct) = %q", got)
	}
}

func TestNewWidth(t *testing.T) {
	p := New(20, 1)
	got := p.Format([]string{"aaaaaaaa", "bbbbbbbb", "cccccccc"})
	want := "[\"aaaaaaaa\",\n \"bbbbbbbb\",\n \"cccccccc\"]"
	if got != want {
		t.Fatalf("Format() = %q; want %q", got, want)
	}
}
