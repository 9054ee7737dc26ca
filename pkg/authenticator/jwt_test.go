package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tamaliftics/backend/config"
)

type tokenObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func Test_jwtTokenEngine(t *testing.T) {
	engine := NewTokenEngine[tokenObject](config.TokenConfigs{
		Secret:     "secret",
		Expiration: time.Minute,
	})

	token, err := engine.Generate("user1", tokenObject{ID: "user1", Name: "foo"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, tokenObject{ID: "user1", Name: "foo"}, obj)
}

func Test_jwtTokenEngine_expired(t *testing.T) {
	engine := NewTokenEngine[tokenObject](config.TokenConfigs{
		Secret:     "secret",
		Expiration: -time.Minute,
	})

	token, err := engine.Generate("user1", tokenObject{ID: "user1"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func Test_jwtTokenEngine_wrongSecret(t *testing.T) {
	engine := NewTokenEngine[tokenObject](config.TokenConfigs{
		Secret:     "secret",
		Expiration: time.Minute,
	})

	other := NewTokenEngine[tokenObject](config.TokenConfigs{
		Secret:     "another-secret",
		Expiration: time.Minute,
	})

	token, err := engine.Generate("user1", tokenObject{ID: "user1"})
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.Error(t, err)
}
