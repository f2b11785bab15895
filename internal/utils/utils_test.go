package utils

import (
	"database/sql"
	"reflect"
	"testing"
	"time"
)

func TestSplitList(t *testing.T) {
	got := SplitList("Books, Toys", "", "Home  Decor,Books", " ,")
	want := []string{"Books", "Toys", "Home Decor"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitList = %v, want %v", got, want)
	}
	if got := SplitList(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFormatISOSortsAsText(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	early := time.Date(2024, 1, 2, 3, 4, 5, 0, loc)
	late := early.Add(9 * time.Hour)

	a, b := FormatISO(early), FormatISO(late)
	if a != "2024-01-01T21:34:05.000Z" {
		t.Fatalf("FormatISO = %q", a)
	}
	if !(a < b) {
		t.Fatalf("expected %q < %q", a, b)
	}
	if FormatISO(time.Time{}) != "" || FormatNullISO(sql.NullTime{}) != "" {
		t.Fatalf("zero values should format empty")
	}
}
