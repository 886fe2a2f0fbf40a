package tracker

import (
	"fruitstock-telegram-bot/internal/stock"
	"github.com/pkg/errors"
)

// ErrMessageNotFound is returned by a Messenger when the message to edit no longer exists.
var ErrMessageNotFound = errors.New("message not found")

// Messenger is the part of the chat SDK the tracker needs.
type Messenger interface {
	SendMessage(chatID int64, text string) (int, error)
	EditMessage(chatID int64, messageID int, text string) error
}

// MessageRef points at the persistent stock message.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// State is everything the tracker remembers between ticks. It lives in memory only.
type State struct {
	Snapshot  stock.Snapshot
	Payload   stock.Payload
	Message   *MessageRef
	Cooldowns stock.Cooldowns
	// Text is the body last written to Message.
	Text string
}

type Status string

const (
	Published     Status = "published"
	Unchanged     Status = "unchanged"
	FetchFailed   Status = "fetch_failed"
	PublishFailed Status = "publish_failed"
)

type Trigger string

const (
	TriggerPoll      Trigger = "poll"
	TriggerCountdown Trigger = "countdown"
)

type Action string

const (
	ActionNone   Action = "none"
	ActionSent   Action = "sent"
	ActionEdited Action = "edited"
	ActionResent Action = "resent"
)

// Result describes the outcome of a single tick.
type Result struct {
	ID      string
	Trigger Trigger
	Status  Status
	Action  Action
	Changes []stock.Change
	Err     error
}

// Failed reports whether the tick ended in an error.
func (r Result) Failed() bool {
	return r.Status == FetchFailed || r.Status == PublishFailed
}
