package store

import (
	"errors"
	"sync"

	"github.com/formbox/formbox/internal/model"
)

// ErrFormNotFound is returned when no form exists for the given id.
var ErrFormNotFound = errors.New("form not found")

// FormStore holds form definitions and their append-only response
// sequences under a single lock. Keeping both behind one mutex makes
// cross-store sequences atomic: a form id is never visible without its
// response slot, and ResponseCount can never be observed out of sync
// with the sequence length.
type FormStore struct {
	mu        sync.RWMutex
	forms     map[string]*model.Form
	order     []string // form ids in creation order
	responses map[string][]*model.Response
}

// NewFormStore creates an empty FormStore.
func NewFormStore() *FormStore {
	return &FormStore{
		forms:     make(map[string]*model.Form),
		responses: make(map[string][]*model.Response),
	}
}

// CreateForm inserts the form and initializes its empty response
// sequence atomically.
func (s *FormStore) CreateForm(form *model.Form) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *form
	s.forms[form.ID] = &stored
	s.order = append(s.order, form.ID)
	s.responses[form.ID] = []*model.Response{}
}

// GetForm returns a copy of the form, or ErrFormNotFound.
func (s *FormStore) GetForm(id string) (*model.Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	form, ok := s.forms[id]
	if !ok {
		return nil, ErrFormNotFound
	}
	cp := *form
	return &cp, nil
}

// ListByOwner returns copies of all forms owned by the given email, in
// creation order.
func (s *FormStore) ListByOwner(ownerEmail string) []*model.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := []*model.Form{}
	for _, id := range s.order {
		form := s.forms[id]
		if form.OwnerEmail == ownerEmail {
			cp := *form
			owned = append(owned, &cp)
		}
	}
	return owned
}

// AppendResponse appends the response to the form's sequence and bumps
// the form's ResponseCount in the same critical section. Returns the
// new sequence length, or ErrFormNotFound when the form does not exist.
func (s *FormStore) AppendResponse(formID string, resp *model.Response) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.forms[formID]
	if !ok {
		return 0, ErrFormNotFound
	}

	s.responses[formID] = append(s.responses[formID], resp)
	form.ResponseCount = len(s.responses[formID])
	return form.ResponseCount, nil
}

// ListResponses returns the form's response sequence in submission
// order, or ErrFormNotFound. The returned slice is a copy; the
// responses themselves are immutable once stored.
func (s *FormStore) ListResponses(formID string) ([]*model.Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq, ok := s.responses[formID]
	if !ok {
		return nil, ErrFormNotFound
	}

	out := make([]*model.Response, len(seq))
	copy(out, seq)
	return out, nil
}

// Counts returns the number of forms and the total number of responses
// across all forms.
func (s *FormStore) Counts() (forms, totalResponses int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, seq := range s.responses {
		total += len(seq)
	}
	return len(s.forms), total
}

// Clear removes all forms and responses.
func (s *FormStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms = make(map[string]*model.Form)
	s.order = nil
	s.responses = make(map[string][]*model.Response)
}
