// Package store implements the volatile in-memory data layer: identity
// records, form definitions and their append-only response sequences.
// Nothing here survives a process restart; a full reset is a supported
// operation.
package store

// Store bundles the identity and form stores. It is constructed once at
// process startup and injected into the services; there is no ambient
// singleton, so tests can run isolated stores in parallel.
type Store struct {
	Identity *IdentityStore
	Forms    *FormStore
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		Identity: NewIdentityStore(),
		Forms:    NewFormStore(),
	}
}

// Stats is a read-only aggregate over all stores.
type Stats struct {
	UsersCount     int `json:"users_count"`
	FormsCount     int `json:"forms_count"`
	TotalResponses int `json:"total_responses"`
	APIKeysCount   int `json:"api_keys_count"`
}

// Stats returns current counts across all stores.
func (s *Store) Stats() Stats {
	users, apiKeys := s.Identity.Counts()
	forms, responses := s.Forms.Counts()
	return Stats{
		UsersCount:     users,
		FormsCount:     forms,
		TotalResponses: responses,
		APIKeysCount:   apiKeys,
	}
}

// ClearAll empties every store. Used by the debug reset endpoint and
// for test isolation.
func (s *Store) ClearAll() {
	s.Identity.Clear()
	s.Forms.Clear()
}
