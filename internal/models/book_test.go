package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBook_GenreTags(t *testing.T) {
	tests := []struct {
		name     string
		genres   string
		expected []string
	}{
		{
			name:     "single tag",
			genres:   "fantasy",
			expected: []string{"fantasy"},
		},
		{
			name:     "multiple tags with spaces",
			genres:   "fantasy, sci-fi ,  horror",
			expected: []string{"fantasy", "sci-fi", "horror"},
		},
		{
			name:     "empty segments dropped",
			genres:   ",fantasy,,",
			expected: []string{"fantasy"},
		},
		{
			name:     "empty string",
			genres:   "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Book{Genres: tt.genres}
			if got := b.GenreTags(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("GenreTags() = %v, expected %v", got, tt.expected)
			}
			if b.Genres != tt.genres {
				t.Errorf("GenreTags() mutated Genres to %q", b.Genres)
			}
		})
	}
}

func TestReview_IsAuthoredBy(t *testing.T) {
	r := Review{AuthorID: "alice"}

	if !r.IsAuthoredBy("alice") {
		t.Error("IsAuthoredBy(alice) = false, expected true")
	}
	if r.IsAuthoredBy("bob") {
		t.Error("IsAuthoredBy(bob) = true, expected false")
	}

	orphan := Review{}
	if orphan.IsAuthoredBy("") {
		t.Error("empty author must not match empty requester")
	}
}

func TestBook_JSONKeys(t *testing.T) {
	data, err := json.Marshal(Book{ID: "1", Title: "Dune", Author: "Frank Herbert"})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	for _, key := range []string{"id", "title", "author", "description", "genres", "createdAt", "updatedAt"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if _, ok := fields["Title"]; ok {
		t.Errorf("unexpected key %q in %s", "Title", data)
	}
}
