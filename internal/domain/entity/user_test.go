package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUserStartsInMainMenu(t *testing.T) {
	u := NewUser(1, 10)
	require.Equal(t, StateMainMenu, u.State)

	u.SetState(StateAwaitingPhoto)
	require.Equal(t, StateAwaitingPhoto, u.State)
}
