package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/patrickprogramme/subformat/pkg/model"
)

func TestWriteTablePlainWhenRedirected(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]string{{"abc", "English", "en", "manual", "2", "3.50s"}, {"short"}}
	if err := writeTable(&buf, inspectColumns, rows); err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	out := buf.String()
	if strings.ContainsAny(out, "╭│") {
		t.Fatalf("redirected output should use ASCII borders:\n%s", out)
	}
	for _, want := range []string{"VIDEO", "SNIPPETS", "abc", "3.50s", "short"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTableNoColumns(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, nil, [][]string{{"x"}}); err != nil || buf.Len() != 0 {
		t.Fatalf("writeTable(nil) = %q, %v", buf.String(), err)
	}
}

func TestInspectRowUsesSourceValue(t *testing.T) {
	tr := model.NewFetchedTranscript("abc", "English", "en-us", true, []model.Snippet{
		{Text: "a", Start: 0, Duration: 1},
		{Text: "b", Start: 1, Duration: 2.5},
	})
	want := []string{"abc", "English", "en-US", "generated", "2", "3.50s"}
	if got := inspectRow(tr); !reflect.DeepEqual(got, want) {
		t.Fatalf("inspectRow = %q; want %q", got, want)
	}
}
