package dto

import (
	"strings"
	"testing"
)

func TestGenerateVideoRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		topic   string
		wantErr string
	}{
		{"valid topic", "The history of the Roman Empire", ""},
		{"exactly minimum length", "abc", ""},
		{"missing topic", "", "required"},
		{"whitespace only", "   \t ", "required"},
		{"too short", "ab", "at least 3"},
		{"too short after trimming", " ab ", "at least 3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := GenerateVideoRequest{Topic: tc.topic}.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatal("expected valid topic, got:", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q should mention %q", err.Error(), tc.wantErr)
			}
		})
	}
}
