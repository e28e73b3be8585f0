package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestForm_Public(t *testing.T) {
	form := &Form{
		ID:          "form-1",
		OwnerEmail:  "a@b.com",
		Title:       "Survey",
		Description: "A survey",
		Fields: []Field{
			{Name: "q1", Type: "text", Required: true},
		},
		CreatedAt:     time.Now(),
		ResponseCount: 3,
	}

	public := form.Public()

	if public.ID != form.ID || public.Title != form.Title || public.Description != form.Description {
		t.Error("public projection should preserve id, title and description")
	}

	if len(public.Fields) != 1 || public.Fields[0].Name != "q1" {
		t.Error("public projection should preserve the field list")
	}

	// The serialized projection must not leak the owner or the count.
	data, err := json.Marshal(public)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(string(data), "owner_email") {
		t.Error("public projection leaks owner_email")
	}
	if strings.Contains(string(data), "response_count") {
		t.Error("public projection leaks response_count")
	}
}

func TestUser_Summary(t *testing.T) {
	user := &User{
		Email:        "a@b.com",
		PasswordHash: "$argon2id$...",
		APIKey:       "fb_abc",
		CreatedAt:    time.Now(),
	}

	summary := user.Summary()

	if summary.Email != user.Email || summary.APIKey != user.APIKey {
		t.Error("summary should carry email and api key")
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(string(data), "argon2id") {
		t.Error("serialized user leaks the password hash")
	}
	if strings.Contains(string(data), "fb_abc") {
		t.Error("serialized user leaks the api key")
	}
}
