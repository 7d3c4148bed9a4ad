package envelope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type player struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func TestObjectSuccess(t *testing.T) {
	res := Object[player](200, []byte(`{"name": "pippo", "score": 3}`))

	require.True(t, res.Ok())
	require.NoError(t, res.Err())
	assert.Equal(t, "pippo", res.Value().Name)
	assert.Equal(t, 3, res.Value().Score)
	assert.Nil(t, res.APIError())
}

func TestObjectFailureCarriesUpstreamDetail(t *testing.T) {
	body := []byte(`{"status": {"message": "Forbidden", "status_code": 403}}`)
	res := Object[player](403, body)

	require.False(t, res.Ok())
	assert.Nil(t, res.Value())

	apiErr := res.APIError()
	require.NotNil(t, apiErr)
	assert.Equal(t, "Forbidden", apiErr.Message)
	assert.Equal(t, 403, apiErr.StatusCode)
}

func TestFailureDefaultsOnEmptyBody(t *testing.T) {
	res := Object[player](500, nil)

	apiErr := res.APIError()
	require.NotNil(t, apiErr)
	assert.Equal(t, "Bad Request", apiErr.Message)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestFailureDefaultsEachPieceIndependently(t *testing.T) {
	res := Object[player](429, []byte(`{"status": {"message": "Rate limit exceeded"}}`))

	apiErr := res.APIError()
	require.NotNil(t, apiErr)
	assert.Equal(t, "Rate limit exceeded", apiErr.Message)
	assert.Equal(t, 400, apiErr.StatusCode)

	res = Object[player](404, []byte(`{"status": {"status_code": 404}}`))
	apiErr = res.APIError()
	require.NotNil(t, apiErr)
	assert.Equal(t, "Bad Request", apiErr.Message)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestFailureDefaultsOnMalformedBody(t *testing.T) {
	res := List[player](502, []byte("<html>bad gateway</html>"))

	apiErr := res.APIError()
	require.NotNil(t, apiErr)
	assert.Equal(t, "Bad Request", apiErr.Message)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestListPreservesOrder(t *testing.T) {
	body := []byte(`[{"name": "a", "score": 1}, {"name": "b", "score": 2}, {"name": "a", "score": 1}]`)
	res := List[player](200, body)

	require.True(t, res.Ok())
	require.Len(t, res.Value(), 3)
	assert.Equal(t, "a", res.Value()[0].Name)
	assert.Equal(t, "b", res.Value()[1].Name)
	assert.Equal(t, "a", res.Value()[2].Name)
}

func TestSetCollapsesStructuralDuplicates(t *testing.T) {
	body := []byte(`[{"name": "a", "score": 1}, {"name": "b", "score": 2}, {"name": "a", "score": 1}]`)
	res := Set[player](200, body)

	require.True(t, res.Ok())
	require.Len(t, res.Value(), 2)
	assert.Equal(t, "a", res.Value()[0].Name)
	assert.Equal(t, "b", res.Value()[1].Name)
}

func TestSetKeepsDistinctElements(t *testing.T) {
	body := []byte(`[{"name": "a", "score": 1}, {"name": "a", "score": 2}]`)
	res := Set[player](200, body)

	require.True(t, res.Ok())
	assert.Len(t, res.Value(), 2)
}

func TestRawStringList(t *testing.T) {
	res := Raw[[]string](200, []byte(`["EUW1_1", "EUW1_2"]`))

	require.True(t, res.Ok())
	assert.Equal(t, []string{"EUW1_1", "EUW1_2"}, res.Value())
}

func TestRawInteger(t *testing.T) {
	res := Raw[int](200, []byte(`57`))

	require.True(t, res.Ok())
	assert.Equal(t, 57, res.Value())
}

func TestRawFailure(t *testing.T) {
	res := Raw[int](401, []byte(`{"status": {"message": "Unauthorized", "status_code": 401}}`))

	require.False(t, res.Ok())
	assert.Zero(t, res.Value())
	assert.Equal(t, 401, res.APIError().StatusCode)
}

func TestDecodeErrorIsNotAPIError(t *testing.T) {
	res := Object[player](200, []byte(`not json`))

	require.False(t, res.Ok())
	assert.Nil(t, res.APIError())
}

func TestFailureWrapsSentinel(t *testing.T) {
	res := Failure[*player](ErrNoResult)

	require.False(t, res.Ok())
	assert.True(t, errors.Is(res.Err(), ErrNoResult))
	assert.Nil(t, res.APIError())
}

func TestGetUnpacksBothVariants(t *testing.T) {
	v, err := Success(42).Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = Failure[int](ErrNoResult).Get()
	require.Error(t, err)
	assert.Zero(t, v)
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Message: "Not Found", StatusCode: 404}
	assert.Equal(t, "riot api: 404 Not Found", err.Error())
}
