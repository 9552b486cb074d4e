package impl

import (
	"encoding/json"
	"testing"

	"snsbridge/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_IOS(t *testing.T) {
	payload := &entity.PushPayload{
		Username: "eviltrout",
		Excerpt:  "this is a test notification",
		PostURL:  "/t/some-topic/1/2",
	}

	message, err := buildMessage(entity.PlatformIOS, payload, 3, "https://forum.example.com")
	require.NoError(t, err)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal([]byte(message), &envelope))

	assert.Equal(t, "@eviltrout: this is a test notification", envelope["default"])
	assert.Equal(t, envelope["APNS"], envelope["APNS_SANDBOX"])

	// The APNS value is itself a JSON document serialized as a string.
	var inner struct {
		APS struct {
			Alert string `json:"alert"`
			Badge int    `json:"badge"`
		} `json:"aps"`
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(envelope["APNS"]), &inner))

	assert.Equal(t, "@eviltrout: this is a test notification", inner.APS.Alert)
	assert.Equal(t, 3, inner.APS.Badge)
	assert.Equal(t, "https://forum.example.com/t/some-topic/1/2", inner.URL)
}

func TestBuildMessage_Android(t *testing.T) {
	payload := &entity.PushPayload{
		Username:   "eviltrout",
		Excerpt:    "this is a test notification",
		PostURL:    "/t/some-topic/1/2",
		TopicTitle: "Some Topic",
	}

	message, err := buildMessage(entity.PlatformAndroid, payload, 0, "https://forum.example.com")
	require.NoError(t, err)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal([]byte(message), &envelope))
	require.Contains(t, envelope, "gcm")

	var inner struct {
		Data struct {
			Message string `json:"message"`
			URL     string `json:"url"`
		} `json:"data"`
		Notification struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		} `json:"notification"`
	}
	require.NoError(t, json.Unmarshal([]byte(envelope["gcm"]), &inner))

	assert.Equal(t, "@eviltrout: this is a test notification", inner.Data.Message)
	assert.Equal(t, "https://forum.example.com/t/some-topic/1/2", inner.Data.URL)
	assert.Equal(t, "Some Topic", inner.Notification.Title)
	assert.Equal(t, "@eviltrout: this is a test notification", inner.Notification.Body)
}

func TestNotificationMessage_TitleAndBodyMode(t *testing.T) {
	payload := &entity.PushPayload{
		Username:        "eviltrout",
		Excerpt:         "ignored excerpt",
		UseTitleAndBody: true,
		Title:           "New reply",
		Body:            "Someone replied to your post",
	}

	assert.Equal(t, "Someone replied to your post", notificationMessage(payload))
	assert.Equal(t, "New reply", notificationTitle(payload))
}

func TestNotificationMessage_MentionFormat(t *testing.T) {
	payload := &entity.PushPayload{
		Username: "codinghorror",
		Excerpt:  "check this out",
	}

	assert.Equal(t, "@codinghorror: check this out", notificationMessage(payload))
}

func TestNotificationTitle_FallsBackToTranslatedTitle(t *testing.T) {
	payload := &entity.PushPayload{
		Username:        "eviltrout",
		Excerpt:         "hello",
		TranslatedTitle: "eviltrout mentioned you",
	}

	assert.Equal(t, "eviltrout mentioned you", notificationTitle(payload))
}

func TestNotificationTitle_PrefersTopicTitle(t *testing.T) {
	payload := &entity.PushPayload{
		TopicTitle:      "Some Topic",
		TranslatedTitle: "eviltrout mentioned you",
	}

	assert.Equal(t, "Some Topic", notificationTitle(payload))
}

func TestBuildMessage_EmptyBaseURL(t *testing.T) {
	payload := &entity.PushPayload{
		Username: "eviltrout",
		Excerpt:  "hello",
		PostURL:  "/t/some-topic/1/2",
	}

	message, err := buildMessage(entity.PlatformIOS, payload, 0, "")
	require.NoError(t, err)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal([]byte(message), &envelope))

	var inner struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(envelope["APNS"]), &inner))
	assert.Equal(t, "/t/some-topic/1/2", inner.URL)
}
