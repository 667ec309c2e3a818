package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBoardPostDecode(t *testing.T) {
	payload := `{
		"bid": 42,
		"boardTitle": "hello",
		"boardContents": "<p>hi</p>",
		"boardView": 7,
		"boardCategory": "GALLERY",
		"userResponseDto": {"uid": 3, "userName": "kim", "userTh": 12, "userEmail": "kim@example.com"},
		"createdDate": "2024-05-01T09:07:33"
	}`

	var p BoardPost
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p.BID != "42" {
		t.Errorf("BID = %q, want 42", p.BID)
	}
	if p.Author.UserTh != 12 || p.Author.UserEmail != "kim@example.com" {
		t.Errorf("Author = %+v", p.Author)
	}
	if p.CreatedDate.Raw != "2024-05-01T09:07:33" {
		t.Errorf("CreatedDate.Raw = %q", p.CreatedDate.Raw)
	}
}

func TestBoardIDString(t *testing.T) {
	var id BoardID
	if err := json.Unmarshal([]byte(`"abc-1"`), &id); err != nil {
		t.Fatal(err)
	}
	if id != "abc-1" {
		t.Errorf("id = %q, want abc-1", id)
	}
	if err := json.Unmarshal([]byte(`{}`), &id); err == nil {
		t.Error("Unmarshal(object) error = nil, want error")
	}
}

func TestTimestampMillis(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`1714554453000`), &ts); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if ts.Millis == nil {
		t.Fatal("Millis = nil")
	}
	if got := ts.ISO(time.UTC); got != "2024-05-01T09:07:33" {
		t.Errorf("ISO() = %q, want 2024-05-01T09:07:33", got)
	}
	b, err := json.Marshal(ts)
	if err != nil || string(b) != "1714554453000" {
		t.Errorf("Marshal() = %s, %v", b, err)
	}
}

func TestTimestampTime(t *testing.T) {
	seoul := time.FixedZone("KST", 9*3600)
	tests := []struct {
		raw    string
		ok     bool
		hour   int
		minute int
	}{
		{"2024-05-01T09:07:33", true, 9, 7},
		{"2024-05-01T09:07:33.123456", true, 9, 7},
		{"2024-05-01T09:07", true, 9, 7},
		{"2024-05-01T00:07:33Z", true, 9, 7},
		{"yesterday", false, 0, 0},
		{"", false, 0, 0},
	}
	for _, tt := range tests {
		got, ok := Timestamp{Raw: tt.raw}.Time(seoul)
		if ok != tt.ok {
			t.Errorf("Time(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			continue
		}
		if ok && (got.Hour() != tt.hour || got.Minute() != tt.minute) {
			t.Errorf("Time(%q) = %v, want %02d:%02d", tt.raw, got, tt.hour, tt.minute)
		}
	}
}

func TestTimestampNull(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil {
		t.Fatal(err)
	}
	if !ts.IsZero() {
		t.Error("IsZero() = false for null")
	}
}
