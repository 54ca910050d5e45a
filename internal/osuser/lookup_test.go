package osuser

import (
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubLookups(t *testing.T) *int {
	t.Helper()
	calls := 0
	originalUser, originalGroup := DefaultUserLookup, DefaultGroupLookup
	DefaultUserLookup = func(id string) (*user.User, error) {
		calls++
		if id == "0" {
			return &user.User{Uid: "0", Username: "root"}, nil
		}
		return nil, user.UnknownUserIdError(1)
	}
	DefaultGroupLookup = func(id string) (*user.Group, error) {
		calls++
		if id == "100" {
			return &user.Group{Gid: "100", Name: "users"}, nil
		}
		return nil, errors.New("no such group")
	}
	t.Cleanup(func() {
		DefaultUserLookup, DefaultGroupLookup = originalUser, originalGroup
	})
	return &calls
}

func TestResolverNames(t *testing.T) {
	calls := stubLookups(t)
	resolver := NewResolver()

	assert.Equal(t, "root", resolver.UserName(0))
	assert.Equal(t, "4242", resolver.UserName(4242))
	assert.Equal(t, "users", resolver.GroupName(100))
	assert.Equal(t, "65534", resolver.GroupName(65534))
	assert.Equal(t, 4, *calls)
}

func TestResolverMemoizes(t *testing.T) {
	calls := stubLookups(t)
	resolver := NewResolver()

	for i := 0; i < 3; i++ {
		resolver.UserName(0)
		resolver.UserName(4242)
		resolver.GroupName(100)
	}
	assert.Equal(t, 3, *calls)
}
