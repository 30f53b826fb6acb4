package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeric_Decode(t *testing.T) {
	var row InsightRow
	err := json.Unmarshal([]byte(`{"spend":"12.5","impressions":100,"reach":null,"ctr":""}`), &row)
	require.NoError(t, err)

	spend, err := row.Spend.Float()
	require.NoError(t, err)
	assert.Equal(t, 12.5, spend)

	impressions, err := row.Impressions.Int()
	require.NoError(t, err)
	assert.Equal(t, 100, impressions)

	assert.True(t, row.Reach.IsEmpty())
	assert.True(t, row.CTR.IsEmpty())
	assert.True(t, row.Clicks.IsEmpty(), "campo ausente")

	reach, err := row.Reach.Int()
	require.NoError(t, err)
	assert.Zero(t, reach)
}

func TestNumeric_RejectsNonNumericJSON(t *testing.T) {
	var row InsightRow
	err := json.Unmarshal([]byte(`{"spend":{"amount":1}}`), &row)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"spend":true}`), &row)
	assert.Error(t, err)
}

func TestNumeric_InvalidText(t *testing.T) {
	_, err := NewNumeric("abc").Float()
	assert.Error(t, err)

	_, err = NewNumeric("12.5").Int()
	assert.Error(t, err)

	_, err = NewNumeric("NaN").Float()
	assert.Error(t, err)
}

func TestParseErrorResponse(t *testing.T) {
	errResp := ParseErrorResponse([]byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"fbtrace_id":"abc"}}`))
	require.NotNil(t, errResp)
	assert.True(t, errResp.IsTokenExpired())

	assert.Nil(t, ParseErrorResponse([]byte(`{"error":"bad token"}`)))
	assert.Nil(t, ParseErrorResponse([]byte(`[]`)))
}
