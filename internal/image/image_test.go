package image

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSave(t *testing.T) {
	saver := NewSaver()
	path := filepath.Join(t.TempDir(), "out", "render.png")

	data := []byte{0x89, 'P', 'N', 'G'}
	if err := saver.Save(data, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("saved bytes = %v, want %v", got, data)
	}
}

func TestSave_EmptyData(t *testing.T) {
	saver := NewSaver()
	if err := saver.Save(nil, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("Save(nil) succeeded, want error")
	}
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	saver := NewSaver()
	got, err := saver.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(got) != "image-bytes" {
		t.Errorf("Fetch() = %q, want image-bytes", got)
	}
}

func TestFetch_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	saver := NewSaver()
	if _, err := saver.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Fetch() on 404 succeeded, want error")
	}
}

func TestGeneratePath(t *testing.T) {
	ts := time.Date(2026, 2, 3, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		basePath string
		index    int
		total    int
		want     string
	}{
		{"explicit single", "naga.png", 0, 1, "naga.png"},
		{"explicit batch", "naga.png", 1, 3, "naga-2.png"},
		{"default single", "", 0, 1, "luckygen-20260203-150405.png"},
		{"default batch", "", 2, 3, "luckygen-20260203-150405-3.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GeneratePath(tt.basePath, tt.index, tt.total, ts); got != tt.want {
				t.Errorf("GeneratePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDataURI_RoundTrip(t *testing.T) {
	data := []byte{1, 2, 3, 4}

	uri := EncodeDataURI(data, "image/png")
	gotData, gotMIME, err := ParseDataURI(uri)
	if err != nil {
		t.Fatalf("ParseDataURI() error = %v", err)
	}
	if string(gotData) != string(data) {
		t.Errorf("data = %v, want %v", gotData, data)
	}
	if gotMIME != "image/png" {
		t.Errorf("mime = %q, want image/png", gotMIME)
	}
}

func TestParseDataURI_NormalizesJPG(t *testing.T) {
	_, mimeType, err := ParseDataURI("data:image/jpg;base64,AQID")
	if err != nil {
		t.Fatalf("ParseDataURI() error = %v", err)
	}
	if mimeType != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg", mimeType)
	}
}

func TestParseDataURI_Invalid(t *testing.T) {
	for _, uri := range []string{"", "http://example.com/a.png", "data:image/png;base64"} {
		if _, _, err := ParseDataURI(uri); err == nil {
			t.Errorf("ParseDataURI(%q) succeeded, want error", uri)
		}
	}
}

func TestDetectMIME(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	if got := DetectMIME(png); got != "image/png" {
		t.Errorf("DetectMIME(png) = %q, want image/png", got)
	}
	if got := DetectMIME([]byte("plain text content")); got != "image/png" {
		t.Errorf("DetectMIME(text) = %q, want image/png default", got)
	}
}
