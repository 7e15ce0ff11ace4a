package services

import (
	"sync"
)

type SensitiveActionKind string

const (
	ActionUpdateUser  SensitiveActionKind = "update_user"
	ActionChangeRole  SensitiveActionKind = "change_role"
	ActionForceLogout SensitiveActionKind = "force_logout"
)

// PendingAction is a queued privileged mutation waiting for OTP
// verification. Held in memory only; lost on restart.
type PendingAction struct {
	Action       SensitiveActionKind
	TargetUserID uint
	Payload      map[string]string
	ChallengeRef string
}

// PendingActionStore keeps a single slot per operator. Requesting a second
// action before the first resolves overwrites it, it is not queued.
type PendingActionStore struct {
	mu      sync.Mutex
	pending map[uint]*PendingAction
}

func NewPendingActionStore() *PendingActionStore {
	return &PendingActionStore{pending: make(map[uint]*PendingAction)}
}

func (s *PendingActionStore) Put(operatorID uint, action *PendingAction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[operatorID] = action
}

func (s *PendingActionStore) Get(operatorID uint) (*PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	action, ok := s.pending[operatorID]
	return action, ok
}

// Take removes and returns the slot. Execution discards the pending action
// regardless of how the mutation itself turns out.
func (s *PendingActionStore) Take(operatorID uint) (*PendingAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	action, ok := s.pending[operatorID]
	if ok {
		delete(s.pending, operatorID)
	}
	return action, ok
}

func (s *PendingActionStore) Discard(operatorID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, operatorID)
}
