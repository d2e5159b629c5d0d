package todo

import (
	"errors"
	"testing"
)

func TestActionSpecDecode(t *testing.T) {
	tests := []struct {
		name string
		spec ActionSpec
		want Action
	}{
		{"add", ActionSpec{Kind: KindAddTask, Text: "x"}, AddTask{Text: "x"}},
		{"add bottom", ActionSpec{Kind: KindAddTask, Text: "x", Position: "Bottom"}, AddTask{Text: "x", Position: InsertBottom}},
		{"add with id", ActionSpec{Kind: KindAddTask, Text: "x", ID: "9"}, AddTask{Text: "x", ID: "9"}},
		{"delete", ActionSpec{Kind: KindDeleteTask, ID: "1"}, DeleteTask{ID: "1"}},
		{"toggle", ActionSpec{Kind: KindToggleComplete, ID: "1"}, ToggleComplete{ID: "1"}},
		{"save", ActionSpec{Kind: KindSaveTask, ID: "1", Text: "y"}, SaveTask{ID: "1", Text: "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.Decode()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("expected %#v, got %#v", tt.want, got)
			}
			if got.Kind() != tt.spec.Kind {
				t.Errorf("expected kind %s, got %s", tt.spec.Kind, got.Kind())
			}
		})
	}
}

func TestActionSpecDecodeUnknownKind(t *testing.T) {
	_, err := ActionSpec{Kind: "rename"}.Decode()
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestActionSpecDecodeInvalidPosition(t *testing.T) {
	_, err := ActionSpec{Kind: KindAddTask, Text: "x", Position: "middle"}.Decode()
	if err == nil {
		t.Error("expected error for invalid position")
	}
}
