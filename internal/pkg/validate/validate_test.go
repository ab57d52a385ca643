package validate

import (
	"testing"

	"github.com/ainame-auth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_Valid(t *testing.T) {
	err := Struct(domain.RegisterRequest{
		Email: "a@x.com", Username: "alice", Password: "pw", ConfirmPassword: "pw", Code: "1234",
	})
	assert.NoError(t, err)
}

func TestStruct_MessagesUseJSONNames(t *testing.T) {
	err := Struct(domain.RegisterRequest{
		Email: "bad", Username: "alice", Password: "pw", ConfirmPassword: "other", Code: "12",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email address")
	assert.Contains(t, err.Error(), "confirm_password must match password")
	assert.Contains(t, err.Error(), "code must be exactly 4 characters")
}

func TestStruct_Required(t *testing.T) {
	err := Struct(domain.LoginRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "password is required")
}

func TestStruct_NonStruct(t *testing.T) {
	assert.Error(t, Struct("not a struct"))
}
