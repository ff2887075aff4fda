package service

import (
	"context"
	"testing"
	"time"

	"groomer-directory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNotifier is a mock implementation of the Notifier interface
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, to, subject, html string) error {
	args := m.Called(ctx, to, subject, html)
	return args.Error(0)
}

func TestContactService_Submit(t *testing.T) {
	valid := ContactInput{Name: " Jane ", Email: "jane@example.com", Message: "Hello"}

	tests := []struct {
		name        string
		input       ContactInput
		storeErr    error
		notifyErr   error
		withNotify  bool
		expectStore bool
		expectError error
		anyError    bool
	}{
		{name: "stored and notified", input: valid, withNotify: true, expectStore: true},
		{name: "notification failure does not fail submission", input: valid, withNotify: true, notifyErr: assert.AnError, expectStore: true},
		{name: "stored without notifier", input: valid, expectStore: true},
		{name: "missing name", input: ContactInput{Email: "jane@example.com", Message: "Hi"}, expectError: ErrInvalidContact},
		{name: "bad email", input: ContactInput{Name: "Jane", Email: "jane@", Message: "Hi"}, expectError: ErrInvalidContact},
		{name: "blank message", input: ContactInput{Name: "Jane", Email: "jane@example.com", Message: "  "}, expectError: ErrInvalidContact},
		{name: "store failure", input: valid, storeErr: assert.AnError, expectStore: true, anyError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockNotifier := new(MockNotifier)

			if tt.expectStore {
				mockRepo.On("CreateContactMessage", mock.Anything, mock.AnythingOfType("*models.ContactMessage")).
					Run(func(args mock.Arguments) {
						msg := args.Get(1).(*models.ContactMessage)
						msg.ID = 42
						msg.CreatedAt = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
					}).
					Return(tt.storeErr)
			}
			if tt.withNotify && tt.storeErr == nil {
				mockNotifier.On("Send", mock.Anything, "owner@example.com", "New Contact Form Submission from Jane", mock.AnythingOfType("string")).
					Return(tt.notifyErr)
			}

			var notifier Notifier
			if tt.withNotify {
				notifier = mockNotifier
			}
			svc := NewContactService(mockRepo, notifier, "owner@example.com", "London Dog Groomers")

			msg, err := svc.Submit(context.Background(), tt.input)

			switch {
			case tt.expectError != nil:
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, msg)
			case tt.anyError:
				assert.Error(t, err)
				assert.Nil(t, msg)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(42), msg.ID)
				assert.Equal(t, "Jane", msg.Name)
			}
			mockRepo.AssertExpectations(t)
			mockNotifier.AssertExpectations(t)
		})
	}
}
