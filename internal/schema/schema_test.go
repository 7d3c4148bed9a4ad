package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	A int `json:"a"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (i *inner) UnmarshalJSON(data []byte) error { return Unmarshal(data, i) }

type outer struct {
	Name string  `json:"name"`
	Opt  string  `json:"opt" riot:"optional"`
	In   inner   `json:"in"`
	Ptr  *inner  `json:"ptr" riot:"optional"`
	List []inner `json:"list"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (o *outer) UnmarshalJSON(data []byte) error { return Unmarshal(data, o) }

type base struct {
	Key string `json:"key"`

	// IntKey is derived from Key.
	IntKey int `json:"-"`

	Extensions map[string]json.RawMessage `json:"-"`
}

func (b *base) UnmarshalJSON(data []byte) error { return Unmarshal(data, b) }

func (b *base) Derive() { b.IntKey = len(b.Key) }

type derived struct {
	base

	Extra int `json:"extra"`
}

func (d *derived) UnmarshalJSON(data []byte) error { return Unmarshal(data, d) }

func TestUnmarshalFillsDeclaredFields(t *testing.T) {
	payload := `{
		"name": "x",
		"in": {"a": 1},
		"ptr": {"a": 2},
		"list": [{"a": 3}, {"a": 4}]
	}`

	var o outer
	require.NoError(t, json.Unmarshal([]byte(payload), &o))

	assert.Equal(t, "x", o.Name)
	assert.Equal(t, 1, o.In.A)
	require.NotNil(t, o.Ptr)
	assert.Equal(t, 2, o.Ptr.A)
	require.Len(t, o.List, 2)
	assert.Equal(t, 3, o.List[0].A)
	assert.Equal(t, 4, o.List[1].A)
	assert.Nil(t, o.Extensions)
}

func TestUnmarshalMissingRequiredField(t *testing.T) {
	var o outer
	err := json.Unmarshal([]byte(`{"in": {"a": 1}, "list": []}`), &o)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "outer", mismatch.Type)
	assert.Equal(t, "name", mismatch.Field)
}

func TestUnmarshalMissingNestedRequiredField(t *testing.T) {
	var o outer
	err := json.Unmarshal([]byte(`{"name": "x", "in": {}, "list": []}`), &o)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "inner", mismatch.Type)
	assert.Equal(t, "a", mismatch.Field)
}

func TestUnmarshalOptionalFieldsAbsent(t *testing.T) {
	var o outer
	require.NoError(t, json.Unmarshal([]byte(`{"name": "x", "in": {"a": 1}, "list": []}`), &o))

	assert.Empty(t, o.Opt)
	// An absent optional nested record stays nil, never a
	// zero-valued record.
	assert.Nil(t, o.Ptr)
}

func TestUnmarshalNullLeavesZeroValue(t *testing.T) {
	var o outer
	require.NoError(t, json.Unmarshal([]byte(`{"name": null, "in": {"a": 1}, "ptr": null, "list": []}`), &o))

	assert.Empty(t, o.Name)
	assert.Nil(t, o.Ptr)
}

func TestUnmarshalPreservesUnknownKeys(t *testing.T) {
	payload := `{"name": "x", "in": {"a": 1, "nested_extra": true}, "list": [], "outer_extra": [1, 2]}`

	var o outer
	require.NoError(t, json.Unmarshal([]byte(payload), &o))

	require.Contains(t, o.Extensions, "outer_extra")
	assert.JSONEq(t, `[1, 2]`, string(o.Extensions["outer_extra"]))
	require.Contains(t, o.In.Extensions, "nested_extra")
	assert.JSONEq(t, `true`, string(o.In.Extensions["nested_extra"]))
}

func TestUnmarshalEmbeddedBaseFields(t *testing.T) {
	var d derived
	require.NoError(t, json.Unmarshal([]byte(`{"key": "abcd", "extra": 7, "spare": 0}`), &d))

	assert.Equal(t, "abcd", d.Key)
	assert.Equal(t, 7, d.Extra)
	// The derive hook promoted from the base runs on the derived
	// record too.
	assert.Equal(t, 4, d.IntKey)
	// Unclaimed keys land on the embedded Extensions map.
	assert.Contains(t, d.Extensions, "spare")
}

func TestUnmarshalEmbeddedBaseMissingField(t *testing.T) {
	var d derived
	err := json.Unmarshal([]byte(`{"extra": 7}`), &d)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "key", mismatch.Field)
}

func TestUnmarshalDeriveRuns(t *testing.T) {
	var b base
	require.NoError(t, json.Unmarshal([]byte(`{"key": "xyz"}`), &b))
	assert.Equal(t, 3, b.IntKey)
}

func TestUnmarshalRejectsNonObject(t *testing.T) {
	var o outer
	err := json.Unmarshal([]byte(`[1, 2, 3]`), &o)
	require.Error(t, err)

	var mismatch *MismatchError
	assert.False(t, errors.As(err, &mismatch))
}
