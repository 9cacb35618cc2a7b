package service

import (
	"testing"

	"study_buddy_backend/internal/config"
)

func TestNewContentGenerator(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		apiKey string
		want   string
	}{
		{name: "empty_key", apiKey: "", want: "demo"},
		{name: "whitespace_key", apiKey: "  ", want: "demo"},
		{name: "placeholder_key", apiKey: "your_gemini_api_key_here", want: "demo"},
		{name: "real_key", apiKey: "AIzaSyTest123", want: "gemini"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gen := NewContentGenerator(config.AIConfig{
				BaseURL: "https://generativelanguage.googleapis.com/v1beta",
				APIKey:  tc.apiKey,
				Model:   "gemini-2.0-flash",
			})
			if got := gen.Name(); got != tc.want {
				t.Fatalf("got=%s want=%s", got, tc.want)
			}
		})
	}
}
