package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/iresident/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestMonotonicWithinMillisecond(t *testing.T) {
	at := time.UnixMilli(1700000000000).UTC()
	a := idx.NewAt(at)
	b := idx.NewAt(at)
	require.Less(t, a.String(), b.String())
}

func TestTimeExtraction(t *testing.T) {
	tm := time.UnixMilli(1700000000123).UTC()
	require.True(t, idx.NewAt(tm).Time().Equal(tm))
	require.True(t, idx.Zero.Time().IsZero())
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FA"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, s)
	}
}
