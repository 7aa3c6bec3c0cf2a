package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_Do_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("expected bearer auth header, got %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Auth: BearerAuth("tok")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !resp.IsSuccess() {
		t.Errorf("expected success, got %d", resp.StatusCode)
	}
	if string(resp.Body) != "hello" {
		t.Errorf("unexpected body %q", resp.Body)
	}
}

func TestClient_Do_ServerErrorClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"})
	if err == nil {
		t.Fatal("expected classified error for 502")
	}
	clientErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if clientErr.Code != ErrCodeServer {
		t.Errorf("expected server code, got %s", clientErr.Code)
	}
	if !clientErr.Retryable {
		t.Error("5xx should be marked retryable")
	}
	if resp == nil || resp.StatusCode != http.StatusBadGateway {
		t.Error("response should still carry the status code")
	}
}

func TestClient_Do_AuthErrorClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/x"})
	clientErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if clientErr.Code != ErrCodeAuth {
		t.Errorf("expected auth code, got %s", clientErr.Code)
	}
	if clientErr.Retryable {
		t.Error("401 should not be retryable")
	}
}

func TestClient_Do_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/slow"})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	clientErr, ok := err.(*Error)
	if !ok || clientErr.Code != ErrCodeTimeout {
		t.Errorf("expected timeout classification, got %v", err)
	}
}

func TestClient_MultipartBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("expected model field, got %q", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "voice.mp3" {
			t.Errorf("unexpected filename %q", hdr.Filename)
		}
		data, _ := io.ReadAll(f)
		if string(data) != "audio-bytes" {
			t.Errorf("unexpected file content %q", data)
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/upload",
		Body: &MultipartBody{
			Fields: map[string]string{"model": "whisper-1"},
			Files: []FileField{{
				FieldName: "file",
				FileName:  "voice.mp3",
				Reader:    strings.NewReader("audio-bytes"),
			}},
		},
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
}

func TestClassifyStatusCode(t *testing.T) {
	if ClassifyStatusCode(200, nil) != nil {
		t.Error("2xx should not classify as error")
	}
	if got := ClassifyStatusCode(429, nil); got.Code != ErrCodeRateLimit || !got.Retryable {
		t.Errorf("unexpected 429 classification: %+v", got)
	}
	if got := ClassifyStatusCode(400, []byte("bad")); got.Code != ErrCodeValidation {
		t.Errorf("unexpected 400 classification: %+v", got)
	}
}
