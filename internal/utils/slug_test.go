package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Avatar 2", "avatar-2"},
		{"The Dark Knight", "the-dark-knight"},
		{"  Spirited   Away  ", "spirited-away"},
		{"Mission: Impossible - Fallout", "mission-impossible-fallout"},
		{"WALL·E", "wall-e"},
		{"12 Angry Men", "12-angry-men"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestSlugifyCollision(t *testing.T) {
	// Titles differing only in punctuation and case normalize to the same
	// slug, which the catalog treats as a conflict.
	a := Slugify("Avatar 2")
	b := Slugify("avatar (2)")
	if a != b {
		t.Fatalf("expected colliding slugs, got %q and %q", a, b)
	}
}
