package repos

import (
	"feedbackhub/internal/domain"

	"github.com/jmoiron/sqlx"
)

type FeedbackRepo struct{ DB *sqlx.DB }

func NewFeedbackRepo(db *sqlx.DB) *FeedbackRepo { return &FeedbackRepo{DB: db} }

func (r *FeedbackRepo) Insert(f *domain.Feedback) (int64, error) {
	res, err := r.DB.Exec(`INSERT INTO feedback(sender_id,receiver_email,message,tag,is_anonymous,timestamp,acknowledged)
	                       VALUES(?,?,?,?,?,?,0)`,
		f.SenderID, f.ReceiverEmail, f.Message, f.Tag, f.IsAnonymous, f.Timestamp)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListByReceiver returns feedback addressed to the given address, newest first.
func (r *FeedbackRepo) ListByReceiver(address string) ([]domain.Feedback, error) {
	out := []domain.Feedback{}
	err := r.DB.Select(&out, `SELECT id,sender_id,receiver_email,message,tag,is_anonymous,timestamp,acknowledged
	                          FROM feedback WHERE receiver_email=? ORDER BY timestamp DESC`, address)
	return out, err
}

// ListBySender returns feedback the given user submitted, newest first.
func (r *FeedbackRepo) ListBySender(senderID int64) ([]domain.Feedback, error) {
	out := []domain.Feedback{}
	err := r.DB.Select(&out, `SELECT id,sender_id,receiver_email,message,tag,is_anonymous,timestamp,acknowledged
	                          FROM feedback WHERE sender_id=? ORDER BY timestamp DESC`, senderID)
	return out, err
}

// Acknowledge marks a row read. The update is scoped to the receiver's
// address so callers cannot flip rows addressed to someone else; it
// reports whether a row matched.
func (r *FeedbackRepo) Acknowledge(id int64, address string) (bool, error) {
	res, err := r.DB.Exec(`UPDATE feedback SET acknowledged=1 WHERE id=? AND receiver_email=?`, id, address)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
