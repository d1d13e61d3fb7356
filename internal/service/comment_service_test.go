package service

import (
	"encoding/json"
	"testing"
)

func TestLessonPath(t *testing.T) {
	if got := lessonPath(0, 0); got != "0.0" {
		t.Errorf("lessonPath(0, 0) = %q, want \"0.0\"", got)
	}
	if got := lessonPath(2, 5); got != "2.5" {
		t.Errorf("lessonPath(2, 5) = %q, want \"2.5\"", got)
	}
}

func TestAppendCommentID(t *testing.T) {
	out, changed, err := appendCommentID(nil, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("appending to an empty array must report a change")
	}
	if string(out) != `["c1"]` {
		t.Errorf("out = %s, want [\"c1\"]", out)
	}

	out, changed, err = appendCommentID(out, "c2")
	if err != nil {
		t.Fatal(err)
	}
	if !changed || string(out) != `["c1","c2"]` {
		t.Errorf("out = %s changed = %v, want [\"c1\",\"c2\"] and changed", out, changed)
	}
}

func TestAppendCommentIDIdempotent(t *testing.T) {
	raw := json.RawMessage(`["c1","c2"]`)

	out, changed, err := appendCommentID(raw, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("re-adding an existing ID must not report a change")
	}
	if string(out) != string(raw) {
		t.Errorf("out = %s, want the input unchanged", out)
	}
}

func TestAppendCommentIDMalformed(t *testing.T) {
	if _, _, err := appendCommentID(json.RawMessage(`{"oops":1}`), "c1"); err == nil {
		t.Error("a non-array column value must surface an error")
	}
}
