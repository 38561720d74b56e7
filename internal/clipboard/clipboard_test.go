package clipboard

import (
	"errors"
	"testing"
)

func TestWriteAllRejectsEmptyText(t *testing.T) {
	if err := (System{}).WriteAll(""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("err = %v; want ErrEmptyText", err)
	}
}
