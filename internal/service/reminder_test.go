package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"flagquiz/internal/domain/entities"
)

type fakeReminderRepo struct {
	recipients map[int][]entities.ReminderRecipient
	err        error
}

func (r *fakeReminderRepo) GetReminderRecipients(_ context.Context, hour int) ([]entities.ReminderRecipient, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.recipients[hour], nil
}

type fakeNotifier struct {
	chats []int64
}

func (n *fakeNotifier) SendReminder(_, chatID int64) {
	n.chats = append(n.chats, chatID)
}

func TestReminderServiceSendDueReminders(t *testing.T) {
	repo := &fakeReminderRepo{
		recipients: map[int][]entities.ReminderRecipient{
			18: {
				{UserID: 1, ChatID: 100},
				{UserID: 2, ChatID: 200},
			},
		},
	}
	notifier := &fakeNotifier{}

	svc := NewReminderService(repo, zap.NewNop())
	svc.SetNotifier(notifier)

	if err := svc.sendDueReminders(context.Background(), 18); err != nil {
		t.Fatalf("sendDueReminders(18) failed: %v", err)
	}
	if len(notifier.chats) != 2 {
		t.Fatalf("notified %d chats, want 2", len(notifier.chats))
	}
	if notifier.chats[0] != 100 || notifier.chats[1] != 200 {
		t.Fatalf("notified chats %v, want [100 200]", notifier.chats)
	}

	// An hour with nothing due notifies nobody.
	notifier.chats = nil
	if err := svc.sendDueReminders(context.Background(), 9); err != nil {
		t.Fatalf("sendDueReminders(9) failed: %v", err)
	}
	if len(notifier.chats) != 0 {
		t.Fatalf("notified %v for an idle hour, want none", notifier.chats)
	}
}

func TestReminderServiceErrors(t *testing.T) {
	t.Run("missing notifier", func(t *testing.T) {
		svc := NewReminderService(&fakeReminderRepo{}, zap.NewNop())

		if err := svc.sendDueReminders(context.Background(), 18); err == nil {
			t.Fatalf("sendDueReminders() without notifier succeeded")
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		wantErr := errors.New("connection refused")
		svc := NewReminderService(&fakeReminderRepo{err: wantErr}, zap.NewNop())
		svc.SetNotifier(&fakeNotifier{})

		if err := svc.sendDueReminders(context.Background(), 18); !errors.Is(err, wantErr) {
			t.Fatalf("sendDueReminders() error = %v, want %v", err, wantErr)
		}
	})
}
