package contact_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/formguard/pkg/contact"
	"github.com/dmitrymomot/formguard/pkg/email"
	"github.com/dmitrymomot/formguard/pkg/form"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func validValues() form.Map {
	return form.Map{
		"name":    "Maria Souza",
		"email":   "maria@example.com",
		"phone":   "(11) 98765-4321",
		"company": "Acme Ltda",
		"message": "Gostaria de uma demonstração.",
	}
}

// recordingSink keeps every delivered submission.
type recordingSink struct {
	mu   sync.Mutex
	subs []*contact.Submission
	err  error
}

func (s *recordingSink) Deliver(_ context.Context, sub *contact.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.subs = append(s.subs, sub)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Deliver(ctx context.Context, sub *contact.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}
