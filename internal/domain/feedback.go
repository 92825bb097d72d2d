package domain

type Feedback struct {
	ID            int64  `db:"id" json:"id"`
	SenderID      int64  `db:"sender_id" json:"sender_id,omitempty"`
	ReceiverEmail string `db:"receiver_email" json:"receiver_email"`
	Message       string `db:"message" json:"message"`
	Tag           string `db:"tag" json:"tag,omitempty"`
	IsAnonymous   bool   `db:"is_anonymous" json:"is_anonymous"`
	Timestamp     string `db:"timestamp" json:"timestamp"` // ISO-8601 UTC
	Acknowledged  bool   `db:"acknowledged" json:"acknowledged"`
}
