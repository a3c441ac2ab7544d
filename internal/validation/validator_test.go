package validation

import (
	"encoding/json"
	"errors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

type actionRequest struct {
	Action string `validate:"required,oneof=create update"`
	Port   int    `validate:"min=1"`
}

func TestValidatorStruct(t *testing.T) {
	require := require.New(t)

	v, err := New()
	require.NoError(err, "validator must be built")

	t.Log("valid struct")
	{
		require.NoError(v.Struct(&actionRequest{Action: "create", Port: 1}))
	}

	t.Log("invalid struct")
	{
		err := v.Struct(&actionRequest{Action: "archive"})
		require.Error(err)

		var pldErr *PayloadError
		require.True(errors.As(err, &pldErr), "error must be PayloadError")
		require.Len(pldErr.violations, 2)
		require.Equal("Action", pldErr.violations[0].Field)
		require.Equal("Action must be one of [create update]", pldErr.violations[0].Message)

		encoded, err := json.Marshal(pldErr)
		require.NoError(err)
		require.Contains(string(encoded), `"errors":[{"field":"Action"`)
	}
}

func TestEchoValidator(t *testing.T) {
	require := require.New(t)

	v, err := New()
	require.NoError(err)

	err = Echo(v).Validate(&actionRequest{Action: "", Port: 1})
	require.Error(err)

	var httpErr *echo.HTTPError
	require.True(errors.As(err, &httpErr), "error must be echo error")
	require.Equal(http.StatusBadRequest, httpErr.Code)
}
