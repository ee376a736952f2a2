package push

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/hobbyconnect/server/internal/models"
	"github.com/hobbyconnect/server/internal/storage"
)

const meetupNotificationTitle = "🔥 내 주변에 번개 모임이 생겼어요!"

// MeetupNotifier pushes a heads-up about a new lightning meetup to
// users in the organizer's district.
type MeetupNotifier struct {
	store    *storage.Storage
	notifier Notifier
}

func NewMeetupNotifier(store *storage.Storage, notifier Notifier) *MeetupNotifier {
	return &MeetupNotifier{store: store, notifier: notifier}
}

// NotifyNearby looks up users whose location shares the meetup's
// district and multicasts the announcement to their device tokens.
// All failures are logged and swallowed; a push problem must never
// fail the meetup creation that triggered it.
func (m *MeetupNotifier) NotifyNearby(ctx context.Context, meetup *models.LightningMeetup) {
	log := slog.Default()

	users, err := m.store.GetUsersInDistrict(meetup.Location)
	if err != nil {
		log.Error("nearby user lookup failed", "meetup_id", meetup.ID, "error", err)
		return
	}
	if len(users) == 0 {
		log.Info("no nearby users for meetup notification", "meetup_id", meetup.ID)
		return
	}

	tokens := make([]string, 0, len(users))
	for _, user := range users {
		if user.FCMToken != "" {
			tokens = append(tokens, user.FCMToken)
		}
	}
	if len(tokens) == 0 {
		log.Info("no device tokens among nearby users", "meetup_id", meetup.ID)
		return
	}

	payload := Payload{
		Title: meetupNotificationTitle,
		Body:  meetup.Title + " - " + meetup.MeetingTime.Format("2006-01-02 15:04"),
		Data: map[string]string{
			"type":     "lightning_meetup",
			"meetupId": strconv.FormatUint(uint64(meetup.ID), 10),
			"location": meetup.Location,
		},
	}

	if err := m.notifier.SendMulticast(ctx, tokens, payload); err != nil {
		log.Error("meetup push failed", "meetup_id", meetup.ID, "error", err)
		return
	}
	log.Info("meetup notification sent", "meetup_id", meetup.ID, "recipients", len(tokens))
}
