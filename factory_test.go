package dto

import (
	"errors"
	"iter"
	"reflect"
	"testing"
)

type userDto struct {
	Dto
}

func (userDto) FillableAttributes() []string { return []string{"name"} }

type plainDto struct {
	Dto
}

func TestMakeAsDropsNonFillableSilently(t *testing.T) {
	resetBootedTypes()

	user, err := MakeAs[userDto](map[string]any{"name": "Alex", "age": 30})
	if err != nil {
		t.Fatalf("unexpected error from MakeAs: %v", err)
	}
	if !reflect.DeepEqual(user.All(), map[string]any{"name": "Alex"}) {
		t.Fatalf("expected age to be dropped, got %v", user.All())
	}
	if !user.IsInitialized() {
		t.Fatalf("expected factory-built container to be initialized")
	}
}

func TestMakeAsEmptySourceFails(t *testing.T) {
	if _, err := MakeAs[userDto](map[string]any{}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := MakeAs[userDto](nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for nil source, got %v", err)
	}
}

func TestMakeAsRejectsNonContainerType(t *testing.T) {
	type bare struct{ Name string }
	if _, err := MakeAs[bare](map[string]any{"name": "x"}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for type without embedded Dto, got %v", err)
	}
}

func TestMakeAsFromStructSource(t *testing.T) {
	source := struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}{Name: "Alex", Age: 30}

	record, err := MakeAs[plainDto](source)
	if err != nil {
		t.Fatalf("unexpected error from MakeAs: %v", err)
	}
	if got, _ := record.Get("name"); got != "Alex" {
		t.Fatalf("expected name from struct field, got %v", got)
	}
	// json round-trip renders numbers as float64
	if got, _ := record.Get("age"); got != float64(30) {
		t.Fatalf("expected age 30, got %v (%T)", got, got)
	}
}

func TestNormalizeDropsNumericKeys(t *testing.T) {
	attrs, err := normalizeSource(map[any]any{
		"name": "Alex",
		1:      "positional",
		"42":   "numeric string",
		3.5:    "float key",
	})
	if err != nil {
		t.Fatalf("unexpected error from normalizeSource: %v", err)
	}
	if !reflect.DeepEqual(attrs, map[string]any{"name": "Alex"}) {
		t.Fatalf("expected numeric keys dropped, got %v", attrs)
	}
}

func TestNormalizeFromSeq(t *testing.T) {
	pairs := iter.Seq2[string, any](func(yield func(string, any) bool) {
		if !yield("name", "Alex") {
			return
		}
		if !yield("7", "dropped") {
			return
		}
		yield("role", "admin")
	})
	attrs, err := normalizeSource(pairs)
	if err != nil {
		t.Fatalf("unexpected error from normalizeSource: %v", err)
	}
	if !reflect.DeepEqual(attrs, map[string]any{"name": "Alex", "role": "admin"}) {
		t.Fatalf("unexpected attributes: %v", attrs)
	}
}

func TestNormalizeFromContainer(t *testing.T) {
	source, err := New(map[string]any{"name": "Alex"})
	if err != nil {
		t.Fatalf("unexpected error from New: %v", err)
	}
	attrs, err := normalizeSource(source)
	if err != nil {
		t.Fatalf("unexpected error from normalizeSource: %v", err)
	}
	if !reflect.DeepEqual(attrs, map[string]any{"name": "Alex"}) {
		t.Fatalf("unexpected attributes: %v", attrs)
	}
}

func TestNormalizeRejectsUnsupportedShapes(t *testing.T) {
	for _, source := range []any{42, "text", []string{"a"}} {
		if _, err := normalizeSource(source); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for %T, got %v", source, err)
		}
	}
}

func TestFactoryMakeByName(t *testing.T) {
	resetBootedTypes()

	factory := NewFactory()
	if err := factory.Register("UserDto", func() Container { return &userDto{} }); err != nil {
		t.Fatalf("unexpected error from Register: %v", err)
	}

	built, err := factory.Make(map[string]any{"name": "Alex", "age": 30}, "UserDto")
	if err != nil {
		t.Fatalf("unexpected error from Make: %v", err)
	}
	user, ok := built.(*userDto)
	if !ok {
		t.Fatalf("expected *userDto, got %T", built)
	}
	if !reflect.DeepEqual(user.All(), map[string]any{"name": "Alex"}) {
		t.Fatalf("expected non-fillable entries dropped, got %v", user.All())
	}
}

func TestFactoryMakeInvalidTargets(t *testing.T) {
	factory := NewFactory()
	if _, err := factory.Make(map[string]any{"a": 1}, ""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty name, got %v", err)
	}
	if _, err := factory.Make(map[string]any{"a": 1}, "Missing"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown name, got %v", err)
	}

	if err := factory.Register("Broken", func() Container { return nil }); err != nil {
		t.Fatalf("unexpected error from Register: %v", err)
	}
	if _, err := factory.Make(map[string]any{"a": 1}, "Broken"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for nil constructor result, got %v", err)
	}
}

func TestFactoryRegisterGuards(t *testing.T) {
	factory := NewFactory()
	if err := factory.Register("", func() Container { return &plainDto{} }); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty name, got %v", err)
	}
	if err := factory.Register("Dup", func() Container { return &plainDto{} }); err != nil {
		t.Fatalf("unexpected error from Register: %v", err)
	}
	if err := factory.Register("Dup", func() Container { return &plainDto{} }); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected duplicate registration to fail, got %v", err)
	}
}

func TestAsDecodesTypedValue(t *testing.T) {
	d, err := New(map[string]any{"name": "Alex", "age": 30})
	if err != nil {
		t.Fatalf("unexpected error from New: %v", err)
	}
	type profile struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	decoded, err := As[profile](d)
	if err != nil {
		t.Fatalf("unexpected error from As: %v", err)
	}
	if decoded.Name != "Alex" || decoded.Age != 30 {
		t.Fatalf("unexpected decoded value: %+v", decoded)
	}
}
