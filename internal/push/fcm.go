package push

import (
	"context"
	"encoding/json"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// subscriptionPayload is what the browser client stores through the
// subscribe endpoint; only the FCM registration token matters here.
type subscriptionPayload struct {
	Token string `json:"token"`
}

type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(ctx context.Context, credentialsFile string) (*FCMSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init fcm client: %w", err)
	}
	return &FCMSender{client: client}, nil
}

// Send delivers one push message to the target described by the stored
// subscription payload. Each delivery stands alone; callers fan out and
// aggregate failures themselves.
func (s *FCMSender) Send(ctx context.Context, subscription, title, body, link string) error {
	var payload subscriptionPayload
	if err := json.Unmarshal([]byte(subscription), &payload); err != nil {
		return fmt.Errorf("decode subscription: %w", err)
	}
	if payload.Token == "" {
		return fmt.Errorf("subscription has no token")
	}

	msg := &messaging.Message{
		Token: payload.Token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}
	if link != "" {
		msg.Webpush = &messaging.WebpushConfig{
			FCMOptions: &messaging.WebpushFCMOptions{Link: link},
		}
	}

	if _, err := s.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("fcm send: %w", err)
	}
	return nil
}
