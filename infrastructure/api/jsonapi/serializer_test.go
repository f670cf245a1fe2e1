package jsonapi

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/helixml/periodic/application/service"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/domain/element"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementResource_NullMeasurements(t *testing.T) {
	series, state := int64(1), int64(3)
	e := element.ReconstructElement(1, "Hydrogen", "H", &series, &state, "1s1", 53, 1766, element.Measurements{
		Weight: decimal.NewNullDecimal(decimal.RequireFromString("1.008")),
	})

	raw, err := json.Marshal(ElementResource(e))
	require.NoError(t, err)

	var got struct {
		Type          string                     `json:"type"`
		ID            string                     `json:"id"`
		Attributes    map[string]any             `json:"attributes"`
		Relationships map[string]json.RawMessage `json:"relationships"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "element", got.Type)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "1.008", got.Attributes["weight"])
	assert.Contains(t, got.Attributes, "hardness")
	assert.Nil(t, got.Attributes["hardness"])
	assert.JSONEq(t, `{"data":{"type":"series","id":"1"}}`, string(got.Relationships["series"]))
}

func TestElementResource_NoClassification(t *testing.T) {
	e := element.NewElement(118, "Oganesson", "Og", "", 0, 2002, element.Measurements{})

	raw, err := json.Marshal(ElementResource(e))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "relationships")
	assert.Contains(t, string(raw), `"series_id":null`)
}

func TestLoadResource(t *testing.T) {
	id := uuid.New()
	res := service.LoadResult{
		RunID:     id,
		Kind:      dataset.KindState,
		Committed: 4,
		Skipped:   1,
		Skips:     []service.SkippedRecord{{Line: 3, Fields: []string{"1", "Dup"}, Reason: "duplicate key"}},
	}

	r := LoadResource(res)
	assert.Equal(t, id.String(), r.ID)
	attrs, ok := r.Attributes.(LoadAttributes)
	require.True(t, ok)
	assert.Equal(t, "states", attrs.Kind)
	require.Len(t, attrs.Skips, 1)
	assert.Equal(t, 3, attrs.Skips[0].Line)
}

func TestTableResource(t *testing.T) {
	r := TableResource(service.TableOutcome{
		Kind:   dataset.KindSeries,
		Status: service.TableDropFailed,
		Reason: "rows in other tables still reference it",
	})
	assert.Equal(t, "series", r.ID)
	assert.Equal(t, TableAttributes{Status: "drop failed", Reason: "rows in other tables still reference it"}, r.Attributes)
}

func TestNewListResponse_EmptyIsArray(t *testing.T) {
	raw, err := json.Marshal(NewListResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(raw))
}

func TestResources(t *testing.T) {
	rs := Resources([]int64{1817, 1868}, YearResource)
	require.Len(t, rs, 2)
	assert.Equal(t, "1868", rs[1].ID)
}
