package alerting

import (
	"context"
	"errors"
	"testing"

	"alertacordon/internal/domain/constants"
	mockService "alertacordon/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFirebaseChannelPublish(t *testing.T) {
	notifier := mockService.NewMockNotificationService(t)
	ch := NewFirebaseChannel(notifier, "alertas")

	notifier.EXPECT().
		SendTopicNotification(mock.Anything, "alertas", "Robo/Atraco", testAlert().Status, map[string]string{
			"report_id": "42",
			"category":  "robo",
			"latitude":  "-34.9058",
			"longitude": "-56.1882",
			"location":  "18 de Julio y Ejido",
		}).
		Return(nil)

	require.NoError(t, ch.Publish(context.Background(), testAlert()))
	assert.Equal(t, constants.ChannelFirebase, ch.Name())
}

func TestFirebaseChannelPropagatesError(t *testing.T) {
	notifier := mockService.NewMockNotificationService(t)
	notifier.EXPECT().
		SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("quota exceeded"))

	err := NewFirebaseChannel(notifier, "alertas").Publish(context.Background(), testAlert())
	require.EqualError(t, err, "quota exceeded")
}
