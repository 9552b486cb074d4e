package impl

import (
	"encoding/json"
	"fmt"

	"snsbridge/internal/domain/entity"
)

// Wire formats for the broker's "json" message structure. The platform-keyed
// envelope values are themselves JSON documents serialized as strings.

type apsBlock struct {
	Alert string `json:"alert"`
	Badge int    `json:"badge"`
}

type iosNotification struct {
	APS apsBlock `json:"aps"`
	URL string   `json:"url"`
}

type iosEnvelope struct {
	Default     string `json:"default"`
	APNSSandbox string `json:"APNS_SANDBOX"`
	APNS        string `json:"APNS"`
}

type androidData struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

type androidDisplay struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type androidNotification struct {
	Data         androidData    `json:"data"`
	Notification androidDisplay `json:"notification"`
}

type androidEnvelope struct {
	GCM string `json:"gcm"`
}

// notificationMessage derives the alert text shown on the device.
func notificationMessage(payload *entity.PushPayload) string {
	if payload.UseTitleAndBody {
		return payload.Body
	}

	return fmt.Sprintf("@%s: %s", payload.Username, payload.Excerpt)
}

// notificationTitle derives the display title for the Android notification block.
func notificationTitle(payload *entity.PushPayload) string {
	if payload.UseTitleAndBody {
		return payload.Title
	}
	if payload.TopicTitle != "" {
		return payload.TopicTitle
	}

	return payload.TranslatedTitle
}

// buildMessage renders the broker publish message for one registration.
func buildMessage(platform entity.Platform, payload *entity.PushPayload, unread int, baseURL string) (string, error) {
	if platform == entity.PlatformIOS {
		return buildIOSMessage(payload, unread, baseURL)
	}

	return buildAndroidMessage(payload, baseURL)
}

// buildIOSMessage wraps the alert in production and sandbox APNS envelopes
// plus a default fallback message.
func buildIOSMessage(payload *entity.PushPayload, unread int, baseURL string) (string, error) {
	message := notificationMessage(payload)
	notification := iosNotification{
		APS: apsBlock{Alert: message, Badge: unread},
		URL: baseURL + payload.PostURL,
	}

	inner, err := json.Marshal(notification)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ios notification: %w", err)
	}

	envelope, err := json.Marshal(iosEnvelope{
		Default:     message,
		APNSSandbox: string(inner),
		APNS:        string(inner),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal ios envelope: %w", err)
	}

	return string(envelope), nil
}

// buildAndroidMessage wraps a data block and a display notification block in
// the GCM envelope.
func buildAndroidMessage(payload *entity.PushPayload, baseURL string) (string, error) {
	message := notificationMessage(payload)
	notification := androidNotification{
		Data: androidData{
			Message: message,
			URL:     baseURL + payload.PostURL,
		},
		Notification: androidDisplay{
			Title: notificationTitle(payload),
			Body:  message,
		},
	}

	inner, err := json.Marshal(notification)
	if err != nil {
		return "", fmt.Errorf("failed to marshal android notification: %w", err)
	}

	envelope, err := json.Marshal(androidEnvelope{GCM: string(inner)})
	if err != nil {
		return "", fmt.Errorf("failed to marshal android envelope: %w", err)
	}

	return string(envelope), nil
}
