package dto

import (
	"errors"
	"testing"
)

func TestNewPropertyKeepsRawAndValue(t *testing.T) {
	property, err := NewProperty("name", "Alex")
	if err != nil {
		t.Fatalf("unexpected error from NewProperty: %v", err)
	}
	if property.Name != "name" || property.Raw != "Alex" || property.Value != "Alex" {
		t.Fatalf("unexpected descriptor: %+v", property)
	}
	if property.Type != "" {
		t.Fatalf("expected no type hint by default, got %q", property.Type)
	}
}

func TestNewPropertyTypeHint(t *testing.T) {
	property, err := NewProperty("age", 30, WithPropertyType("int"))
	if err != nil {
		t.Fatalf("unexpected error from NewProperty: %v", err)
	}
	if property.Type != "int" {
		t.Fatalf("expected type hint, got %q", property.Type)
	}
}

func TestNewPropertyRejectsInvalidNames(t *testing.T) {
	for _, name := range []string{"", "0", "123", "-7", "3.14", "1e3"} {
		if _, err := NewProperty(name, "x"); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey for %q, got %v", name, err)
		}
	}
	for _, name := range []string{"a1", "1a", "name", "snake_case", "with space"} {
		if _, err := NewProperty(name, "x"); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", name, err)
		}
	}
}
