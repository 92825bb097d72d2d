package services

import (
	"errors"
	"time"

	"feedbackhub/internal/domain"
	"feedbackhub/internal/repos"
)

var ErrNotFound = errors.New("feedback not found")

// Fixed-width UTC instant; lexicographic order matches chronological
// order, which the timestamp-keyed listing relies on.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

type FeedbackService struct {
	Feedback *repos.FeedbackRepo
}

func NewFeedbackService(repo *repos.FeedbackRepo) *FeedbackService {
	return &FeedbackService{Feedback: repo}
}

type SubmitInput struct {
	ReceiverEmail string
	Message       string
	Tag           string
	IsAnonymous   bool
}

// Submit stores a feedback row for the given sender. The receiver address
// is a free-text match key; nothing checks it belongs to a registered
// user, delivery is pull-based.
func (s *FeedbackService) Submit(senderID int64, in SubmitInput) (int64, error) {
	f := &domain.Feedback{
		SenderID:      senderID,
		ReceiverEmail: in.ReceiverEmail,
		Message:       in.Message,
		Tag:           in.Tag,
		IsAnonymous:   in.IsAnonymous,
		Timestamp:     time.Now().UTC().Format(timestampLayout),
	}
	return s.Feedback.Insert(f)
}

// Inbox lists feedback addressed to the caller, newest first. Rows sent
// anonymously come back without the sender id.
func (s *FeedbackService) Inbox(address string) ([]domain.Feedback, error) {
	rows, err := s.Feedback.ListByReceiver(address)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].IsAnonymous {
			rows[i].SenderID = 0
		}
	}
	return rows, nil
}

// Sent lists feedback the caller submitted, newest first.
func (s *FeedbackService) Sent(senderID int64) ([]domain.Feedback, error) {
	return s.Feedback.ListBySender(senderID)
}

// Acknowledge marks a received row as read. Only the receiver can flip
// the flag; re-acknowledging an already-read row is a no-op success.
func (s *FeedbackService) Acknowledge(id int64, address string) error {
	ok, err := s.Feedback.Acknowledge(id, address)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
