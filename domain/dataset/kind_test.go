package dataset

import (
	"errors"
	"io"
	"reflect"
	"testing"
)

func TestKinds_CreationAndTeardownOrder(t *testing.T) {
	want := []Kind{KindState, KindSeries, KindElement, KindCompound, KindComposition}
	if got := Kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}

	wantTeardown := []Kind{KindComposition, KindCompound, KindElement, KindSeries, KindState}
	if got := TeardownOrder(); !reflect.DeepEqual(got, wantTeardown) {
		t.Errorf("TeardownOrder() = %v, want %v", got, wantTeardown)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"states", KindState},
		{"State", KindState},
		{"series", KindSeries},
		{"element", KindElement},
		{"compounds", KindCompound},
		{"compound_elements", KindComposition},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if err != nil {
			t.Fatalf("ParseKind(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseKind("isotopes"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseKind(isotopes) error = %v, want ErrInvalidArgument", err)
	}
}

func TestKind_FieldCount(t *testing.T) {
	if got := KindElement.FieldCount(); got != 20 {
		t.Errorf("elements FieldCount() = %d, want 20", got)
	}
	if got := KindComposition.FieldCount(); got != 5 {
		t.Errorf("compositions FieldCount() = %d, want 5", got)
	}
}

func TestSliceSource(t *testing.T) {
	src := NewSliceSource([]string{"1", "Solido"}, []string{"2", "Liquido"})

	first, err := src.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if first.Line != 1 || first.Fields[1] != "Solido" {
		t.Errorf("first record = %+v", first)
	}
	if _, err := src.Next(); err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if _, err := src.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() after last = %v, want io.EOF", err)
	}
}

func TestKind_Dependents(t *testing.T) {
	tests := []struct {
		kind Kind
		want []Kind
	}{
		{KindState, []Kind{KindElement}},
		{KindSeries, []Kind{KindElement}},
		{KindElement, []Kind{KindComposition}},
		{KindCompound, []Kind{KindComposition}},
		{KindComposition, nil},
	}
	for _, tt := range tests {
		if got := tt.kind.Dependents(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s.Dependents() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
