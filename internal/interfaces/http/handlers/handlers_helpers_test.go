package handlers

import (
	"context"
	"sync"

	"bootcamp-signup.backend/internal/domain/entities"
)

type signupWorkflowStub struct {
	mu     sync.Mutex
	fn     func(ctx context.Context, draft entities.SignupInput) entities.SignupOutcome
	drafts []entities.SignupInput
}

func (s *signupWorkflowStub) TrySignup(ctx context.Context, draft entities.SignupInput) entities.SignupOutcome {
	s.mu.Lock()
	s.drafts = append(s.drafts, draft)
	s.mu.Unlock()
	if s.fn != nil {
		return s.fn(ctx, draft)
	}
	return entities.Created(draft.ToSignup())
}

func (s *signupWorkflowStub) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

func (s *signupWorkflowStub) lastDraft() entities.SignupInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drafts[len(s.drafts)-1]
}
