package tracker

import (
	"context"
	"time"

	"fruitstock-telegram-bot/internal/stock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Tracker mirrors the stock feed into a single chat message.
type Tracker struct {
	chatID    int64
	source    stock.Source
	messenger Messenger
	renderer  *stock.Renderer
	now       func() time.Time
}

func New(chatID int64, source stock.Source, messenger Messenger, renderer *stock.Renderer) *Tracker {
	return &Tracker{
		chatID:    chatID,
		source:    source,
		messenger: messenger,
		renderer:  renderer,
		now:       time.Now,
	}
}

func (t *Tracker) profile() stock.Profile {
	return t.renderer.Profile
}

// Tick runs one fetch -> snapshot -> diff -> render -> publish cycle and
// returns the updated state. A failed tick returns state untouched so the next
// tick retries from the same point.
func (t *Tracker) Tick(ctx context.Context, state State) (State, Result) {
	res := Result{ID: uuid.NewString(), Trigger: TriggerPoll, Action: ActionNone}
	logger := log.WithField("tick", res.ID)

	payload, err := t.source.Fetch(ctx)
	if err != nil {
		res.Status, res.Err = FetchFailed, err
		logger.Warnf("skipping tick, could not fetch stock: %v", err)
		return state, res
	}

	now := t.now()
	profile := t.profile()
	snapshot := stock.BuildSnapshot(payload, profile.CategoryKeys())

	if state.Message == nil {
		text := t.renderer.Render(payload, state.Cooldowns, now)
		id, err := t.messenger.SendMessage(t.chatID, text)
		if err != nil {
			res.Status, res.Err = PublishFailed, errors.Wrap(err, "could not send stock message")
			logger.Error(res.Err)
			return state, res
		}

		res.Status, res.Action = Published, ActionSent
		logger.WithField("message_id", id).Info("sent initial stock message")
		return State{
			Snapshot:  snapshot,
			Payload:   payload,
			Message:   &MessageRef{ChatID: t.chatID, MessageID: id},
			Cooldowns: state.Cooldowns,
			Text:      text,
		}, res
	}

	if snapshot.Equal(state.Snapshot) {
		res.Status = Unchanged
		logger.Debug("stock unchanged")
		return state, res
	}

	res.Changes = stock.Diff(state.Snapshot, snapshot)
	if profile.LogChanges {
		for _, c := range res.Changes {
			logger.Infof("stock change: %s", c)
		}
	}

	cooldowns := state.Cooldowns
	if profile.TrackCooldown {
		cooldowns = cooldowns.Touch(state.Snapshot, snapshot, profile.CategoryKeys(), now)
	}

	text := t.renderer.Render(payload, cooldowns, now)
	ref, action, err := t.publish(logger, state.Message, text)
	if err != nil {
		res.Status, res.Err = PublishFailed, err
		logger.Error(err)
		return state, res
	}

	res.Status, res.Action = Published, action
	return State{
		Snapshot:  snapshot,
		Payload:   payload,
		Message:   ref,
		Cooldowns: cooldowns,
		Text:      text,
	}, res
}

// Refresh re-renders the last payload so restock countdowns stay current.
// It never fetches.
func (t *Tracker) Refresh(ctx context.Context, state State) (State, Result) {
	res := Result{ID: uuid.NewString(), Trigger: TriggerCountdown, Status: Unchanged, Action: ActionNone}

	if !t.profile().TrackCooldown || state.Message == nil || state.Payload == nil {
		return state, res
	}

	text := t.renderer.Render(state.Payload, state.Cooldowns, t.now())
	if text == state.Text {
		return state, res
	}

	logger := log.WithField("tick", res.ID)
	ref, action, err := t.publish(logger, state.Message, text)
	if err != nil {
		res.Status, res.Err = PublishFailed, err
		logger.Error(err)
		return state, res
	}

	res.Status, res.Action = Published, action
	state.Message = ref
	state.Text = text
	return state, res
}

// publish edits the tracked message, falling back to a fresh message when the
// edit fails for any reason.
func (t *Tracker) publish(logger *log.Entry, ref *MessageRef, text string) (*MessageRef, Action, error) {
	err := t.messenger.EditMessage(ref.ChatID, ref.MessageID, text)
	if err == nil {
		logger.WithField("message_id", ref.MessageID).Info("edited stock message")
		return ref, ActionEdited, nil
	}

	if errors.Is(err, ErrMessageNotFound) {
		logger.Warnf("stock message %d no longer exists, sending a new one", ref.MessageID)
	} else {
		logger.Warnf("could not edit stock message %d, sending a new one: %v", ref.MessageID, err)
	}

	id, err := t.messenger.SendMessage(t.chatID, text)
	if err != nil {
		return ref, ActionNone, errors.Wrap(err, "could not resend stock message")
	}

	logger.WithField("message_id", id).Info("sent replacement stock message")
	return &MessageRef{ChatID: t.chatID, MessageID: id}, ActionResent, nil
}
