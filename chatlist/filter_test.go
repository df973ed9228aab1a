package chatlist

import "testing"

func TestFilterPlainWordIsSubstring(t *testing.T) {
	f, err := NewFilter("deploy")
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}

	if !f.Matches(Message{Author: "bot", Body: "starting deploy of api"}) {
		t.Error("plain word should match as substring")
	}
	if !f.Matches(Message{Author: "Deploy Bot", Body: "hi"}) {
		t.Error("matching should be case-insensitive and cover the author")
	}
	if f.Matches(Message{Author: "alice", Body: "lunch?"}) {
		t.Error("non-matching message should be filtered out")
	}
}

func TestFilterGlobPattern(t *testing.T) {
	f, err := NewFilter("build *green*")
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	if !f.Matches(Message{Body: "build is green again"}) {
		t.Error("glob pattern should match")
	}
	if f.Matches(Message{Body: "green build"}) {
		t.Error("glob pattern should respect ordering")
	}
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	f, err := NewFilter("")
	if err != nil {
		t.Fatalf("NewFilter: %v", err)
	}
	if !f.Matches(Message{Body: "anything"}) {
		t.Error("empty filter should match everything")
	}

	var nilFilter *Filter
	if !nilFilter.Matches(Message{Body: "anything"}) {
		t.Error("nil filter should match everything")
	}
	if nilFilter.Pattern() != "" {
		t.Error("nil filter pattern should be empty")
	}
}

func TestFilterInvalidGlob(t *testing.T) {
	if _, err := NewFilter("[oops"); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}
