package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessage_UsesDetailWhenPresent(t *testing.T) {
	req := require.New(t)

	err := New(ErrDuplicate, "Chat already exists")

	req.True(Is(err, ErrDuplicate))
	req.Equal("Chat already exists", Message(err))
}

func TestMessage_FallsBackToCategory(t *testing.T) {
	req := require.New(t)

	err := fmt.Errorf("%w: empty email", ErrValidation)

	req.Equal("Please fill all the fields", Message(err))
}

func TestWrap_KeepsCauseReachable(t *testing.T) {
	req := require.New(t)
	cause := fmt.Errorf("disk full")

	err := Wrap(ErrRemote, "Can not update user data", cause)

	req.True(Is(err, ErrRemote))
	req.True(Is(err, cause))
	req.Equal("Can not update user data", Message(err))
	req.Empty(Message(nil))
}
