package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessWithPagination(t *testing.T) {
	res := SuccessWithPagination(200, []string{"a", "b"}, 2, 2, 5)

	require.NotNil(t, res.Meta)
	assert.Equal(t, 3, res.Meta.TotalPages)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","status_code":200,"data":["a","b"],
		"meta":{"page":2,"limit":2,"total":5,"total_pages":3}}`, string(raw))
}

func TestErrorOmitsData(t *testing.T) {
	raw, err := json.Marshal(Error(400, "invalid analysis type"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","status_code":400,"error":"invalid analysis type"}`, string(raw))
}
