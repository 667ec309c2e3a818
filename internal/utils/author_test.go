package utils

import "testing"

func TestIsAuthor(t *testing.T) {
	tests := []struct {
		viewer, author string
		want           bool
	}{
		{"kim@example.com", "kim@example.com", true},
		{"Kim@example.com", "kim@example.com", false},
		{"", "kim@example.com", false},
		{"kim@example.com", "", false},
		{"", "", false},
		{"lee@example.com", "kim@example.com", false},
	}
	for _, tt := range tests {
		if got := IsAuthor(tt.viewer, tt.author); got != tt.want {
			t.Errorf("IsAuthor(%q, %q) = %v, want %v", tt.viewer, tt.author, got, tt.want)
		}
	}
}

func TestAuthorLabel(t *testing.T) {
	if got := AuthorLabel(12, "김철수"); got != "12기 김철수" {
		t.Errorf("AuthorLabel() = %q", got)
	}
}

func TestAvatarAndProfileURL(t *testing.T) {
	if got := AvatarURL(""); got != DefaultAvatar {
		t.Errorf("AvatarURL(\"\") = %q, want default", got)
	}
	if got := AvatarURL("https://cdn/x.png"); got != "https://cdn/x.png" {
		t.Errorf("AvatarURL() = %q", got)
	}
	if got := ProfileURL(77); got != "/profile/77" {
		t.Errorf("ProfileURL(77) = %q", got)
	}
}
