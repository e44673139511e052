package sheet

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetkit/sheetkit/a1"
)

func TestUpdateRequest(t *testing.T) {
	values := [][]any{
		{"Name", "Major"},
		{"Alexandra", "English"},
	}

	rq := updateRequest(a1.MustParse("Class Data!A1:B2"), values)

	assert.Equal(t, "USER_ENTERED", rq.ValueInputOption)

	require.Len(t, rq.Data, 1)
	assert.Equal(t, "Class Data!A1:B2", rq.Data[0].Range)
	assert.Equal(t, values, [][]any(rq.Data[0].Values))
}

func TestUpdateIfEmptyRefusesNonEmptyRange(t *testing.T) {
	writes := 0

	c := stubClient(t, http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		if rq.Method == http.MethodGet {
			fmt.Fprint(w, `{"range": "Sheet1!A1:B2", "values": [["occupied"]]}`)
			return
		}

		writes++
		fmt.Fprint(w, `{"totalUpdatedCells": 4}`)
	}))

	updated, err := c.UpdateIfEmpty(context.Background(), a1.MustParse("Sheet1!A1:B2"), [][]any{{"a", "b"}})

	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
	assert.Equal(t, 0, writes, "a non-empty range must not be written")
}

func TestUpdateIfEmptyWritesEmptyRange(t *testing.T) {
	writes := 0

	c := stubClient(t, http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		if rq.Method == http.MethodGet {
			fmt.Fprint(w, `{"range": "Sheet1!A1:B2"}`)
			return
		}

		writes++
		fmt.Fprint(w, `{"totalUpdatedCells": 4}`)
	}))

	updated, err := c.UpdateIfEmpty(context.Background(), a1.MustParse("Sheet1!A1:B2"), [][]any{{"a", "b"}})

	require.NoError(t, err)
	assert.Equal(t, int64(4), updated)
	assert.Equal(t, 1, writes)
}

func TestValueRange(t *testing.T) {
	vr := valueRange(a1.MustParse("Sheet1!B2"), [][]any{{1, 2, 3}})

	assert.Equal(t, "Sheet1!B2", vr.Range)
	assert.Len(t, vr.Values, 1)
}
