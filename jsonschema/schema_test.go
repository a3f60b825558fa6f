package jsonschema_test

import (
	"strings"
	"testing"

	js "github.com/reoring/valueschema/jsonschema"
)

func TestMarshal_OmitsEmptyKeywords(t *testing.T) {
	b, err := js.Marshal(&js.Schema{Type: "number", Minimum: js.Float(0), MaxLength: nil})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"minimum": 0`) {
		t.Fatalf("minimum missing: %s", s)
	}
	if strings.Contains(s, "maxLength") || strings.Contains(s, "pattern") {
		t.Fatalf("empty keywords must be omitted: %s", s)
	}
}

func TestMarshal_Object(t *testing.T) {
	obj := &js.Schema{
		Type:                 "object",
		Properties:           map[string]*js.Schema{"n": {Type: "integer"}},
		Required:             []string{"n"},
		AdditionalProperties: false,
	}
	b, err := js.Marshal(obj)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"required": [`, `"additionalProperties": false`, `"type": "integer"`} {
		if !strings.Contains(s, want) {
			t.Fatalf("%s missing: %s", want, s)
		}
	}
}
