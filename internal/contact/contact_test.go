package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubmitPostsForm(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		got = map[string]string{
			"access_key": r.PostForm.Get("access_key"),
			"name":       r.PostForm.Get("name"),
			"email":      r.PostForm.Get("email"),
			"message":    r.PostForm.Get("message"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-123")
	err := c.Submit(context.Background(), Message{Name: "Ada", Email: "ada@example.com", Message: "hello"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got["access_key"] != "key-123" || got["email"] != "ada@example.com" || got["message"] != "hello" || got["name"] != "Ada" {
		t.Fatalf("unexpected form %v", got)
	}
}

func TestSubmitRejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "k").Submit(context.Background(), Message{Email: "a@b.c", Message: "x"})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

func TestSubmitTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url, "k").Submit(context.Background(), Message{Email: "a@b.c", Message: "x"})
	if err == nil || errors.Is(err, ErrRejected) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := (Message{Email: "", Message: "x"}).Validate(); err == nil {
		t.Fatal("expected missing email to fail")
	}
	if err := (Message{Email: "nope", Message: "x"}).Validate(); err == nil {
		t.Fatal("expected invalid email to fail")
	}
	if err := (Message{Email: "a@b.c", Message: " "}).Validate(); err == nil {
		t.Fatal("expected empty message to fail")
	}
}

func TestEnabled(t *testing.T) {
	if NewClient("https://example.com", "").Enabled() {
		t.Fatal("expected client without key to be disabled")
	}
	var c *Client
	if c.Enabled() {
		t.Fatal("expected nil client to be disabled")
	}
}
