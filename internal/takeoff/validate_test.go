package takeoff

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeConfig(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestValidateConfig(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		err := ValidateConfig(nil)
		require.NotNil(t, err)
		assert.Equal(t, "config", err.Field)
	})

	t.Run("valid full config", func(t *testing.T) {
		raw := decodeConfig(t, `{
			"columns": [{"id": "C", "name": "Main Roof", "mappings": ["ROOF", "MR"]}],
			"selectedItems": [{"scope_code": "MR-001VB", "variants": [{"r_value": "R-19"}]}],
			"rateOverrides": {"MR-001VB": 7.25}
		}`)
		assert.Nil(t, ValidateConfig(raw))
	})

	t.Run("empty object is valid", func(t *testing.T) {
		assert.Nil(t, ValidateConfig(decodeConfig(t, `{}`)))
	})

	t.Run("columns not an array", func(t *testing.T) {
		err := ValidateConfig(decodeConfig(t, `{"columns": "nope"}`))
		require.NotNil(t, err)
		assert.Equal(t, "columns", err.Field)
		assert.Equal(t, "columns must be an array", err.Message)
	})

	t.Run("column missing name", func(t *testing.T) {
		err := ValidateConfig(decodeConfig(t, `{"columns": [{"id": "C"}]}`))
		require.NotNil(t, err)
		assert.Equal(t, "each column must have id and name", err.Message)
	})

	t.Run("column mappings not an array", func(t *testing.T) {
		err := ValidateConfig(decodeConfig(t, `{"columns": [{"id": "C", "name": "Roof", "mappings": "ROOF"}]}`))
		require.NotNil(t, err)
		assert.Equal(t, "column mappings must be an array", err.Message)
	})

	t.Run("selectedItems not an array", func(t *testing.T) {
		err := ValidateConfig(decodeConfig(t, `{"selectedItems": {}}`))
		require.NotNil(t, err)
		assert.Equal(t, "selectedItems", err.Field)
	})

	t.Run("selected item missing scope_code", func(t *testing.T) {
		err := ValidateConfig(decodeConfig(t, `{"selectedItems": [{"variants": []}]}`))
		require.NotNil(t, err)
		assert.Equal(t, "each selectedItem must have scope_code", err.Message)
	})

	t.Run("item variants not an array", func(t *testing.T) {
		err := ValidateConfig(decodeConfig(t, `{"selectedItems": [{"scope_code": "MR-001VB", "variants": "big"}]}`))
		require.NotNil(t, err)
		assert.Equal(t, "item variants must be an array", err.Message)
	})

	t.Run("rateOverrides not an object", func(t *testing.T) {
		err := ValidateConfig(decodeConfig(t, `{"rateOverrides": []}`))
		require.NotNil(t, err)
		assert.Equal(t, "rateOverrides", err.Field)
	})

	t.Run("rate override value not numeric", func(t *testing.T) {
		err := ValidateConfig(decodeConfig(t, `{"rateOverrides": {"MR-001VB": "7.25"}}`))
		require.NotNil(t, err)
		assert.Contains(t, err.Message, "MR-001VB")
	})

	t.Run("fail fast returns first violation only", func(t *testing.T) {
		err := ValidateConfig(decodeConfig(t, `{"columns": "nope", "selectedItems": "also nope"}`))
		require.NotNil(t, err)
		assert.Equal(t, "columns", err.Field)
	})
}
