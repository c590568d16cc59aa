package console

import (
	"reflect"
	"testing"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"menu list", []string{"menu", "list"}},
		{`menu add name="Caesar Salad" price=8.99`, []string{"menu", "add", "name=Caesar Salad", "price=8.99"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{`note="trailing open`, []string{"note=trailing open"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := splitCommand(tt.line)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitCommand(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestParseFormBareWordsActAsFlags(t *testing.T) {
	f := parseForm([]string{"unread", "name=Taco"})
	if !f.has("unread") {
		t.Error("bare word not registered as flag")
	}
	if f.get("name") != "Taco" {
		t.Errorf("name = %q", f.get("name"))
	}
	if f.has("missing") {
		t.Error("absent key reported present")
	}
}

func TestFormPrice(t *testing.T) {
	f := parseForm([]string{"price=5.50", "bad=abc", "neg=-1"})

	v, err := f.price("price")
	if err != nil {
		t.Fatalf("price: %v", err)
	}
	if v != 5.50 {
		t.Errorf("price = %v, want 5.50", v)
	}

	if _, err := f.price("bad"); err == nil {
		t.Error("non-numeric price accepted")
	}
	if _, err := f.price("neg"); err == nil {
		t.Error("negative price accepted")
	}
	if _, err := f.price("missing"); err == nil {
		t.Error("missing price accepted")
	}
}

func TestFormID(t *testing.T) {
	f := parseForm([]string{"id=42", "bad=x"})

	v, err := f.id("id")
	if err != nil || v != 42 {
		t.Fatalf("id = %d, %v", v, err)
	}
	if _, err := f.id("bad"); err == nil {
		t.Error("non-integer id accepted")
	}
	if _, err := f.id("missing"); err == nil {
		t.Error("missing id accepted")
	}
}

func TestFormBoolFlag(t *testing.T) {
	f := parseForm([]string{"a=yes", "b=TRUE", "c=1", "d=on", "e=no", "f="})
	for _, key := range []string{"a", "b", "c", "d"} {
		if !f.boolFlag(key) {
			t.Errorf("boolFlag(%q) = false", key)
		}
	}
	for _, key := range []string{"e", "f", "missing"} {
		if f.boolFlag(key) {
			t.Errorf("boolFlag(%q) = true", key)
		}
	}
}
