package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamaliftics/backend/internal/model"
	"github.com/tamaliftics/backend/internal/repository"
	"github.com/tamaliftics/backend/pkg/errorx"
	"github.com/tamaliftics/backend/pkg/testutil"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

func Test_authDomain_SignupAndLogin(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(repository.NewUserRepository(testutil.NewMockRedisClient()))

	signup, err := domain.Signup(ctx, &model.SignupRequest{
		Name:     "lifter",
		Email:    "lifter@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.Equal(t, "lifter", signup.User.Name)
	require.Equal(t, "USER", signup.User.Role)

	byName, err := domain.Login(ctx, &model.LoginRequest{
		Account: "lifter", Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, byName.AccessToken)

	byEmail, err := domain.Login(ctx, &model.LoginRequest{
		Account: "lifter@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, byEmail.AccessToken)

	token, err := xcontext.TokenEngine(ctx).Verify(byName.AccessToken)
	require.NoError(t, err)
	require.Equal(t, signup.User.ID, token.ID)
	require.Equal(t, "lifter", token.Name)
}

func Test_authDomain_Signup_Duplicates(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(repository.NewUserRepository(testutil.NewMockRedisClient()))

	_, err := domain.Signup(ctx, &model.SignupRequest{
		Name: "lifter", Email: "lifter@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = domain.Signup(ctx, &model.SignupRequest{
		Name: "lifter", Email: "other@example.com", Password: "hunter22",
	})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "The username is already taken"), err)

	_, err = domain.Signup(ctx, &model.SignupRequest{
		Name: "other", Email: "lifter@example.com", Password: "hunter22",
	})
	require.Equal(t, errorx.New(errorx.AlreadyExists, "The email is already taken"), err)
}

func Test_authDomain_Login_BadCredentials(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(repository.NewUserRepository(testutil.NewMockRedisClient()))

	_, err := domain.Signup(ctx, &model.SignupRequest{
		Name: "lifter", Email: "lifter@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = domain.Login(ctx, &model.LoginRequest{Account: "lifter", Password: "wrong"})
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid username or password"), err)

	_, err = domain.Login(ctx, &model.LoginRequest{Account: "nobody", Password: "hunter22"})
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid username or password"), err)
}

func Test_authDomain_Ping(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewAuthDomain(repository.NewUserRepository(testutil.NewMockRedisClient()))

	resp, err := domain.Ping(ctx, &model.PingRequest{})
	require.NoError(t, err)
	require.Equal(t, "pong", resp.Message)
}
