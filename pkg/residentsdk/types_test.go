package residentsdk_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
	"github.com/stretchr/testify/require"
)

func TestDateEncoding(t *testing.T) {
	b, err := json.Marshal(residentsdk.Visitor{})
	require.NoError(t, err)
	require.Contains(t, string(b), `"fecha_visita":null`)

	var d residentsdk.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29T18:00:00-03:00"`), &d))
	require.Equal(t, "2024-02-29", d.Format(time.DateOnly))

	require.Error(t, json.Unmarshal([]byte(`"29/02/2024"`), &d))
	require.Error(t, json.Unmarshal([]byte(`20240229`), &d))
}

func TestTimestampAcceptsNaiveLayout(t *testing.T) {
	var ts residentsdk.Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2025-01-02T03:04:05.123456"`), &ts))
	require.Equal(t, time.UTC, ts.Location())
	require.Equal(t, 123456000, ts.Nanosecond())
}

func TestNullableIDTriState(t *testing.T) {
	encode := func(req residentsdk.VehicleRequest) string {
		b, err := json.Marshal(req)
		require.NoError(t, err)
		return string(b)
	}

	require.Equal(t, `{}`, encode(residentsdk.VehicleRequest{}))
	require.Equal(t, `{"usuario_id":null}`, encode(residentsdk.VehicleRequest{UserID: residentsdk.ClearID()}))
	require.Equal(t, `{"usuario_id":4}`, encode(residentsdk.VehicleRequest{UserID: residentsdk.SetID(4)}))

	var req residentsdk.VehicleRequest
	require.NoError(t, json.Unmarshal([]byte(`{"placa":"A"}`), &req))
	require.False(t, req.UserID.Set)

	require.NoError(t, json.Unmarshal([]byte(`{"usuario_id":null}`), &req))
	require.True(t, req.UserID.Set)
	require.Nil(t, req.UserID.Value)
}
