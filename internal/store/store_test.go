package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/formbox/formbox/internal/model"
)

func testUser(email, key string) *model.User {
	return &model.User{
		Email:        email,
		PasswordHash: "hash",
		APIKey:       key,
		CreatedAt:    time.Now(),
	}
}

func testForm(id, owner string) *model.Form {
	return &model.Form{
		ID:         id,
		OwnerEmail: owner,
		Title:      "Survey " + id,
		Fields:     []model.Field{},
		CreatedAt:  time.Now(),
	}
}

func TestIdentityStore_CreateAndLookup(t *testing.T) {
	s := NewIdentityStore()

	if err := s.CreateUser(testUser("a@b.com", "fb_key1")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	byEmail, err := s.GetUserByEmail("a@b.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if byEmail.APIKey != "fb_key1" {
		t.Errorf("expected api key fb_key1, got %s", byEmail.APIKey)
	}

	byKey, err := s.GetUserByAPIKey("fb_key1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if byKey.Email != "a@b.com" {
		t.Errorf("expected email a@b.com, got %s", byKey.Email)
	}
}

func TestIdentityStore_DuplicateEmail(t *testing.T) {
	s := NewIdentityStore()

	if err := s.CreateUser(testUser("a@b.com", "fb_key1")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := s.CreateUser(testUser("a@b.com", "fb_key2"))
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}

	// The losing insert must not disturb the existing key index.
	if _, err := s.GetUserByAPIKey("fb_key2"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for losing key, got %v", err)
	}
}

func TestIdentityStore_UnknownLookups(t *testing.T) {
	s := NewIdentityStore()

	if _, err := s.GetUserByEmail("nobody@x.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := s.GetUserByAPIKey("fb_missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIdentityStore_ReturnsCopies(t *testing.T) {
	s := NewIdentityStore()
	if err := s.CreateUser(testUser("a@b.com", "fb_key1")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, _ := s.GetUserByEmail("a@b.com")
	got.APIKey = "tampered"

	again, _ := s.GetUserByEmail("a@b.com")
	if again.APIKey != "fb_key1" {
		t.Error("mutating a returned user must not affect the store")
	}
}

func TestFormStore_CreateGetList(t *testing.T) {
	s := NewFormStore()

	s.CreateForm(testForm("f1", "a@b.com"))
	s.CreateForm(testForm("f2", "other@x.com"))
	s.CreateForm(testForm("f3", "a@b.com"))

	form, err := s.GetForm("f1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if form.ResponseCount != 0 {
		t.Errorf("expected fresh form to have 0 responses, got %d", form.ResponseCount)
	}

	// Fresh form must have an initialized, empty response sequence.
	responses, err := s.ListResponses("f1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(responses) != 0 {
		t.Errorf("expected empty response sequence, got %d", len(responses))
	}

	owned := s.ListByOwner("a@b.com")
	if len(owned) != 2 {
		t.Fatalf("expected 2 forms, got %d", len(owned))
	}
	if owned[0].ID != "f1" || owned[1].ID != "f3" {
		t.Errorf("expected creation order [f1 f3], got [%s %s]", owned[0].ID, owned[1].ID)
	}
}

func TestFormStore_GetUnknown(t *testing.T) {
	s := NewFormStore()

	if _, err := s.GetForm("missing"); !errors.Is(err, ErrFormNotFound) {
		t.Errorf("expected ErrFormNotFound, got %v", err)
	}
	if _, err := s.ListResponses("missing"); !errors.Is(err, ErrFormNotFound) {
		t.Errorf("expected ErrFormNotFound, got %v", err)
	}
	if _, err := s.AppendResponse("missing", &model.Response{ID: "r1"}); !errors.Is(err, ErrFormNotFound) {
		t.Errorf("expected ErrFormNotFound, got %v", err)
	}
}

func TestFormStore_AppendResponseKeepsCountInSync(t *testing.T) {
	s := NewFormStore()
	s.CreateForm(testForm("f1", "a@b.com"))

	for i := 1; i <= 5; i++ {
		count, err := s.AppendResponse("f1", &model.Response{ID: fmt.Sprintf("r%d", i), FormID: "f1"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if count != i {
			t.Errorf("expected count %d, got %d", i, count)
		}
	}

	form, _ := s.GetForm("f1")
	responses, _ := s.ListResponses("f1")
	if form.ResponseCount != len(responses) {
		t.Errorf("response_count %d out of sync with sequence length %d", form.ResponseCount, len(responses))
	}

	// Submission order is preserved.
	for i, resp := range responses {
		want := fmt.Sprintf("r%d", i+1)
		if resp.ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, resp.ID)
		}
	}
}

func TestFormStore_ConcurrentAppends(t *testing.T) {
	s := NewFormStore()
	s.CreateForm(testForm("f1", "a@b.com"))

	const goroutines = 20
	const perGoroutine = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				id := fmt.Sprintf("r-%d-%d", g, i)
				if _, err := s.AppendResponse("f1", &model.Response{ID: id, FormID: "f1"}); err != nil {
					t.Errorf("append failed: %v", err)
				}
			}
		}(g)
	}
	wg.Wait()

	form, _ := s.GetForm("f1")
	responses, _ := s.ListResponses("f1")

	if len(responses) != goroutines*perGoroutine {
		t.Errorf("expected %d responses, got %d", goroutines*perGoroutine, len(responses))
	}
	if form.ResponseCount != len(responses) {
		t.Errorf("response_count %d out of sync with sequence length %d", form.ResponseCount, len(responses))
	}
}

func TestStore_StatsAndClearAll(t *testing.T) {
	s := New()

	_ = s.Identity.CreateUser(testUser("a@b.com", "fb_key1"))
	_ = s.Identity.CreateUser(testUser("b@c.com", "fb_key2"))
	s.Forms.CreateForm(testForm("f1", "a@b.com"))
	_, _ = s.Forms.AppendResponse("f1", &model.Response{ID: "r1", FormID: "f1"})
	_, _ = s.Forms.AppendResponse("f1", &model.Response{ID: "r2", FormID: "f1"})

	stats := s.Stats()
	want := Stats{UsersCount: 2, FormsCount: 1, TotalResponses: 2, APIKeysCount: 2}
	if stats != want {
		t.Errorf("Stats() = %+v, want %+v", stats, want)
	}

	s.ClearAll()

	stats = s.Stats()
	if stats != (Stats{}) {
		t.Errorf("expected zeroed stats after ClearAll, got %+v", stats)
	}
	if _, err := s.Forms.GetForm("f1"); !errors.Is(err, ErrFormNotFound) {
		t.Errorf("expected ErrFormNotFound after ClearAll, got %v", err)
	}
}
