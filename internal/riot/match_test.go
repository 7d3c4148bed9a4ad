package riot

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchInfoJSON(duration, start, end int64) []byte {
	endField := ""
	if end != 0 {
		endField = fmt.Sprintf(`"gameEndTimestamp": %d,`, end)
	}
	return []byte(fmt.Sprintf(`{
		"gameCreation": %d,
		"gameDuration": %d,
		"gameId": 123,
		"gameMode": "CLASSIC",
		"gameName": "teambuilder-match-123",
		"gameStartTimestamp": %d,
		%s
		"gameType": "MATCHED_GAME",
		"gameVersion": "13.1.1",
		"mapId": 11,
		"participants": [],
		"platformId": "EUW1",
		"queueId": 420,
		"teams": []
	}`, start, duration, start, endField))
}

func TestMatchInfoDurationUnitNormalization(t *testing.T) {
	tests := []struct {
		name     string
		duration int64
		want     int64
	}{
		{"milliseconds collapse to seconds", 1_543_210, 1543},
		{"seconds pass through", 1800, 1800},
		{"boundary stays as is", 10000, 10000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info MatchInfo
			require.NoError(t, json.Unmarshal(matchInfoJSON(tt.duration, 1000, 5000), &info))
			assert.Equal(t, tt.want, info.GameDurationSeconds)
			assert.Equal(t, tt.duration, info.GameDuration)
		})
	}
}

func TestMatchInfoEndTimestampBackfill(t *testing.T) {
	var info MatchInfo
	require.NoError(t, json.Unmarshal(matchInfoJSON(500, 1000, 0), &info))
	assert.Equal(t, int64(1500), info.GameEndTimestamp)
}

func TestMatchInfoEndTimestampKeptWhenPresent(t *testing.T) {
	var info MatchInfo
	require.NoError(t, json.Unmarshal(matchInfoJSON(500, 1000, 999_999), &info))
	assert.Equal(t, int64(999_999), info.GameEndTimestamp)
}

func TestMatchInfoMissingRequiredField(t *testing.T) {
	payload := []byte(`{"gameDuration": 100}`)
	var info MatchInfo
	err := json.Unmarshal(payload, &info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MatchInfo")
}

func TestMatchDecodesNestedRecords(t *testing.T) {
	payload := fmt.Sprintf(`{
		"metadata": {
			"dataVersion": "2",
			"matchId": "EUW1_123",
			"participants": ["puuid-1", "puuid-2"]
		},
		"info": %s,
		"futureKey": true
	}`, matchInfoJSON(1800, 1000, 0))

	var m Match
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	assert.Equal(t, "EUW1_123", m.Metadata.MatchID)
	assert.Len(t, m.Metadata.Participants, 2)
	assert.Equal(t, int64(1800), m.Info.GameDurationSeconds)
	assert.Contains(t, m.Extensions, "futureKey")
}
