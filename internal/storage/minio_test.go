package storage

import (
	"regexp"
	"strings"
	"testing"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("my resume   draft.pdf")
	if strings.Contains(key, " ") {
		t.Errorf("key %q still contains whitespace", key)
	}
	if !strings.HasSuffix(key, "-my-resume-draft.pdf") {
		t.Errorf("key %q, want sanitized name suffix", key)
	}
	if !regexp.MustCompile(`^\d+-`).MatchString(key) {
		t.Errorf("key %q, want millisecond timestamp prefix", key)
	}
}

func TestPublicURLAndKeyRoundTrip(t *testing.T) {
	c := &Client{publicBaseURL: "http://files.example.com"}

	url := c.PublicURL("projects", "123-shot.png")
	if url != "http://files.example.com/projects/123-shot.png" {
		t.Fatalf("url = %q", url)
	}

	if key := c.KeyFromURL("projects", url); key != "123-shot.png" {
		t.Errorf("key = %q", key)
	}
	if key := c.KeyFromURL("cv", url); key != "" {
		t.Errorf("wrong bucket resolved key %q", key)
	}
	if key := c.KeyFromURL("projects", "https://elsewhere.test/projects/x.png"); key != "" {
		t.Errorf("foreign url resolved key %q", key)
	}
}
