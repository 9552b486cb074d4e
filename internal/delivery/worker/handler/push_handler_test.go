package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"snsbridge/internal/domain/entity"
	"snsbridge/internal/domain/service"
	mockUsecase "snsbridge/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushTestHandler(t *testing.T) (*PushHandler, *mockUsecase.MockDispatchUsecase) {
	t.Helper()

	dispatchUC := mockUsecase.NewMockDispatchUsecase(t)
	h := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		dispatchUC:     dispatchUC,
	}

	return h, dispatchUC
}

func newPushTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func encodeEnvelope(t *testing.T, event *service.DispatchEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return fmt.Sprintf(`{
		"message": {
			"data": %q,
			"messageId": "msg-1",
			"attributes": {"request_id": "req-123"}
		},
		"subscription": "projects/test/subscriptions/dispatch-sub"
	}`, base64.StdEncoding.EncodeToString(data))
}

func TestPushHandler_HandlePush(t *testing.T) {
	h, dispatchUC := newPushTestHandler(t)

	userID := uuid.New()
	event := &service.DispatchEvent{
		RequestID: "req-123",
		UserID:    userID.String(),
		Payload: entity.PushPayload{
			Username: "eviltrout",
			Excerpt:  "this is a test notification",
			PostURL:  "/t/some-topic/1/2",
		},
		Unread: 3,
	}
	c, rec := newPushTestContext(t, encodeEnvelope(t, event))

	var dispatchedPayload *entity.PushPayload
	dispatchUC.EXPECT().
		Dispatch(mock.Anything, userID, mock.AnythingOfType("*entity.PushPayload"), 3).
		Run(func(_ context.Context, _ uuid.UUID, payload *entity.PushPayload, _ int) {
			dispatchedPayload = payload
		}).
		Return(nil)

	err := h.HandlePush(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, dispatchedPayload)
	assert.Equal(t, "eviltrout", dispatchedPayload.Username)
	assert.Equal(t, "this is a test notification", dispatchedPayload.Excerpt)
}

func TestPushHandler_HandlePush_DispatchErrorIsRetryable(t *testing.T) {
	h, dispatchUC := newPushTestHandler(t)

	userID := uuid.New()
	event := &service.DispatchEvent{
		UserID: userID.String(),
		Unread: 1,
	}
	c, rec := newPushTestContext(t, encodeEnvelope(t, event))

	dispatchUC.EXPECT().
		Dispatch(mock.Anything, userID, mock.AnythingOfType("*entity.PushPayload"), 1).
		Return(errors.New("database error"))

	err := h.HandlePush(c)
	require.NoError(t, err)

	// 503 signals the broker to redeliver the message.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedUserID(t *testing.T) {
	h, _ := newPushTestHandler(t)

	event := &service.DispatchEvent{
		UserID: "not-a-uuid",
		Unread: 1,
	}
	c, rec := newPushTestContext(t, encodeEnvelope(t, event))

	// No Dispatch call: a malformed user ID never becomes valid on retry,
	// so the message is acked instead of redelivered.
	err := h.HandlePush(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64(t *testing.T) {
	h, _ := newPushTestHandler(t)

	body := `{"message": {"data": "%%%not-base64%%%", "messageId": "msg-1"}, "subscription": "s"}`
	c, rec := newPushTestContext(t, body)

	err := h.HandlePush(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_BadEventJSON(t *testing.T) {
	h, _ := newPushTestHandler(t)

	data := base64.StdEncoding.EncodeToString([]byte("not json"))
	body := fmt.Sprintf(`{"message": {"data": %q, "messageId": "msg-1"}, "subscription": "s"}`, data)
	c, rec := newPushTestContext(t, body)

	err := h.HandlePush(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_MalformedEnvelope(t *testing.T) {
	h, _ := newPushTestHandler(t)

	c, rec := newPushTestContext(t, `{"message": not-json`)

	err := h.HandlePush(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newPushTestHandler(t)

	c, _ := newPushTestContext(t, "")

	withAttr := &PubSubMessage{}
	withAttr.Message.Attributes = map[string]string{"request_id": "from-attributes"}
	assert.Equal(t, "from-attributes", h.extractRequestID(c, withAttr, &service.DispatchEvent{RequestID: "from-event"}))

	assert.Equal(t, "from-event", h.extractRequestID(c, &PubSubMessage{}, &service.DispatchEvent{RequestID: "from-event"}))

	generated := h.extractRequestID(c, &PubSubMessage{}, &service.DispatchEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}
