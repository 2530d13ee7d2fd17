package lookup

import (
	"context"
	"errors"
	"sync"

	"customer-lookup/internal/directory"
	"customer-lookup/internal/domain"
	"customer-lookup/internal/query"
)

var (
	// ErrSearchInFlight is returned when a search is triggered while another is running.
	ErrSearchInFlight = errors.New("search already in progress")
	// ErrSuperseded is returned when a completed search was overtaken by a reset or newer search.
	ErrSuperseded = errors.New("search superseded")
	// ErrNoResults is returned when selecting a record outside a successful result set.
	ErrNoResults = errors.New("no results to select from")
)

// Phase is the coarse state of a lookup session.
type Phase int

const (
	Idle Phase = iota
	Searching
	Results
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Results:
		return "results"
	}
	return "unknown"
}

// View is a read-only copy of a session, taken for rendering.
type View struct {
	Phase     Phase
	Criteria  query.Criteria
	Customers []domain.Customer
	Error     string
	Selected  *domain.Customer
}

// Searched reports whether a search has completed since the last reset.
func (v View) Searched() bool { return v.Phase == Results }

// Session is the view state of one user of the lookup UI.
//
// In Results, Customers and Error are mutually exclusive. A search in flight blocks new
// searches; its completion is dropped if a reset happened meanwhile.
type Session struct {
	mu        sync.Mutex
	searcher  *Searcher
	criteria  query.Criteria
	phase     Phase
	customers []domain.Customer
	errMsg    string
	selected  *domain.Customer
	seq       uint64
}

func NewSession(searcher *Searcher) *Session {
	return &Session{searcher: searcher}
}

// SetCriterion replaces the criteria with a copy that has key set to value.
func (s *Session) SetCriterion(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.criteria.Clone()
	next.Set(key, value)
	s.criteria = next
}

// ReplaceCriteria swaps in c wholesale.
func (s *Session) ReplaceCriteria(c query.Criteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = c.Clone()
}

// Search runs the pipeline with the current criteria and moves the session to Results.
// A fetch failure is recorded in the session and also returned.
func (s *Session) Search(ctx context.Context) error {
	s.mu.Lock()
	if s.phase == Searching {
		s.mu.Unlock()
		return ErrSearchInFlight
	}
	s.seq++
	seq := s.seq
	criteria := s.criteria.Clone()
	s.phase = Searching
	s.selected = nil
	s.mu.Unlock()

	res, err := s.searcher.Run(ctx, criteria)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return ErrSuperseded
	}
	s.phase = Results
	s.selected = nil
	if err != nil {
		s.customers = nil
		s.errMsg = ErrorMessage(err)
		return err
	}
	s.customers = res.Customers
	s.errMsg = ""
	return nil
}

// Reset returns the session to Idle with empty criteria, results and selection.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.phase = Idle
	s.criteria = query.Criteria{}
	s.customers = nil
	s.errMsg = ""
	s.selected = nil
}

// Select opens the detail view for the customer with id.
func (s *Session) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Results || s.errMsg != "" {
		return ErrNoResults
	}
	for i := range s.customers {
		if s.customers[i].ID == id {
			c := s.customers[i]
			s.selected = &c
			return nil
		}
	}
	return domain.ErrNotFound
}

// CloseDetail clears the selection; the phase is unchanged.
func (s *Session) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Snapshot copies the session for rendering.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		Phase:    s.phase,
		Criteria: s.criteria.Clone(),
		Error:    s.errMsg,
	}
	if s.customers != nil {
		v.Customers = append([]domain.Customer(nil), s.customers...)
	}
	if s.selected != nil {
		c := *s.selected
		v.Selected = &c
	}
	return v
}

// ErrorMessage turns a search failure into the text shown to the user.
func ErrorMessage(err error) string {
	var fetchErr *directory.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return directory.FallbackMessage
}
