package utils

import (
	"encoding/json"
	"errors"
	"testing"
)

type patch struct {
	Name    Optional[string]   `json:"name"`
	Comment Optional[string]   `json:"comment"`
	Paid    Optional[bool]     `json:"paid"`
	Tags    Optional[[]string] `json:"tags"`
}

func TestOptionalDistinguishesAbsentNullAndValue(t *testing.T) {
	var p patch
	if err := json.Unmarshal([]byte(`{"comment":null,"paid":false,"tags":[]}`), &p); err != nil {
		t.Fatal(err)
	}

	if p.Name.Set {
		t.Error("absent key must leave Set false")
	}
	if !p.Comment.Set || !p.Comment.Null {
		t.Errorf("comment = %+v, want explicit null", p.Comment)
	}
	if !p.Paid.Set || p.Paid.Null || p.Paid.Value {
		t.Errorf("paid = %+v, want present false", p.Paid)
	}
	if !p.Tags.Set || p.Tags.Null || len(p.Tags.Value) != 0 {
		t.Errorf("tags = %+v, want present empty list", p.Tags)
	}
}

func TestOptionalApplyTo(t *testing.T) {
	name := "Anna"
	if err := (Optional[string]{}).ApplyTo(&name); err != nil || name != "Anna" {
		t.Fatalf("absent: %q, %v", name, err)
	}
	if err := Some("").ApplyTo(&name); err != nil || name != "" {
		t.Fatalf("empty string must overwrite: %q, %v", name, err)
	}
	if err := (Optional[string]{Set: true, Null: true}).ApplyTo(&name); !errors.Is(err, ErrNullValue) {
		t.Fatalf("null: err = %v, want ErrNullValue", err)
	}
}

func TestOptionalApplyToNullable(t *testing.T) {
	orig := "note"
	comment := &orig

	(Optional[string]{}).ApplyToNullable(&comment)
	if comment == nil || *comment != "note" {
		t.Fatalf("absent changed value to %v", comment)
	}

	Some("new").ApplyToNullable(&comment)
	if comment == nil || *comment != "new" {
		t.Fatalf("value not applied: %v", comment)
	}
	if orig != "note" {
		t.Fatal("ApplyToNullable must not write through the old pointer")
	}

	(Optional[string]{Set: true, Null: true}).ApplyToNullable(&comment)
	if comment != nil {
		t.Fatalf("null must clear, got %q", *comment)
	}
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var p patch
	if err := json.Unmarshal([]byte(`{"paid":"yes"}`), &p); err == nil {
		t.Fatal("expected type error")
	}
}
