package auth

import (
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	req := RegisterRequest{Email: "new@hrms.com", Password: "secret1"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "employee", req.Role)

	req = RegisterRequest{Email: "bad", Password: "123", Role: "owner"}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "email")
	assert.Contains(t, m, "password")
	assert.Contains(t, m, "role")
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{}
	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Len(t, errs, 2)

	req = LoginRequest{Email: "admin@hrms.com", Password: "admin123"}
	assert.NoError(t, req.Validate())
}
