package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsSentinel(t *testing.T) {
	wrapped := Wrap(errSentinel, "loading report")

	assert.True(t, Is(wrapped, errSentinel))
	assert.Equal(t, errSentinel, Cause(wrapped))
	assert.Equal(t, "loading report: sentinel", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrapKeepsSentinel")
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "noop"))
	assert.Nil(t, WithStack(nil))
}

func TestJoinSkipsNil(t *testing.T) {
	assert.Nil(t, Join(nil, nil))

	joined := Join(nil, errSentinel)
	assert.True(t, Is(joined, errSentinel))
}

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAsThroughWrap(t *testing.T) {
	err := Wrapf(&codedError{code: 7}, "dispatch %d", 3)

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, 7, target.code)
}
