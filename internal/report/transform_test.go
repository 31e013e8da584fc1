package report

import (
	"reflect"
	"testing"

	"github.com/foundersandcoders/fac-cli/internal/airtable"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, ""},
		{"empty list", []any{}, ""},
		{"single element list", []any{"Elizabeth"}, "Elizabeth"},
		{"multi element list keeps first", []any{"first", "second"}, "first"},
		{"numeric list element", []any{float64(42)}, "42"},
		{"plain string", "abc", "abc"},
		{"number", float64(3.5), "3.5"},
		{"whole number drops fraction", float64(2), "2"},
		{"boolean", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.input); got != tt.want {
				t.Errorf("Flatten(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Elizabeth", "Eliz"},
		{"Ada", "Ada"},
		{"Aldo", "Aldo"},
		{"", ""},
		{"日本語の名前", "日本語の"},
	}

	for _, tt := range tests {
		if got := Abbreviate(tt.input); got != tt.want {
			t.Errorf("Abbreviate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAbbreviate_LengthProperty(t *testing.T) {
	for _, s := range []string{"", "a", "ab", "abc", "abcd", "abcde", "a long name"} {
		got := Abbreviate(s)
		wantLen := len([]rune(s))
		if wantLen > 4 {
			wantLen = 4
		}
		if len([]rune(got)) != wantLen {
			t.Errorf("Abbreviate(%q) has length %d, want %d", s, len([]rune(got)), wantLen)
		}
		if len([]rune(s)) <= 4 && got != s {
			t.Errorf("Abbreviate(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestProcess_NilAndEmpty(t *testing.T) {
	if got := Process(nil); len(got) != 0 {
		t.Errorf("Process(nil) = %v, want empty", got)
	}
	if got := Process([]airtable.Record{}); len(got) != 0 {
		t.Errorf("Process(empty) = %v, want empty", got)
	}
}

func TestProcess_FamilyName(t *testing.T) {
	records := []airtable.Record{
		{"Family name": []any{"Elizabeth"}, "Status": "x"},
	}

	got := Process(records)

	want := []airtable.Record{
		{"Family name": "Eliz", "Status": "x"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Process() = %v, want %v", got, want)
	}
}

func TestProcess_PreservesOtherFields(t *testing.T) {
	records := []airtable.Record{
		{"Name": "Ada", "Score": float64(9)},
		{"Name": "Grace", "Nested": map[string]any{"k": "v"}},
	}

	got := Process(records)

	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i, rec := range got {
		if !reflect.DeepEqual(rec, records[i]) {
			t.Errorf("record %d changed: %v != %v", i, rec, records[i])
		}
	}
}

func TestProcess_ShallowCopy(t *testing.T) {
	nested := map[string]any{"k": "v"}
	original := []airtable.Record{{"Family name": "Long surname", "Nested": nested}}

	processed := Process(original)

	// The top-level copy must not touch the original.
	if original[0]["Family name"] != "Long surname" {
		t.Errorf("original record mutated: %v", original[0]["Family name"])
	}
	if processed[0]["Family name"] != "Long" {
		t.Errorf("expected abbreviated copy, got %v", processed[0]["Family name"])
	}

	// Nested values are shared: mutating the original is visible in the copy.
	nested["k"] = "changed"
	if processed[0]["Nested"].(map[string]any)["k"] != "changed" {
		t.Error("expected nested mapping to be shared with the original")
	}
}

func TestProcess_MissingFamilyName(t *testing.T) {
	records := []airtable.Record{{"Name": "Ada"}}

	got := Process(records)

	if _, ok := got[0]["Family name"]; ok {
		t.Error("Process must not add a family name field")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"defaults", "Name,Email,Status,Date", []string{"Name", "Email", "Status", "Date"}},
		{"whitespace trimmed", " Name , Email ", []string{"Name", "Email"}},
		{"empty tokens dropped", "Name,,Email,", []string{"Name", "Email"}},
		{"empty string", "", []string{}},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
