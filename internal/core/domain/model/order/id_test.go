package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

func TestNewID(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		seq  int64
		want order.ID
	}{
		{
			name: "first order of the day",
			at:   time.Date(2025, 5, 30, 10, 0, 0, 0, time.UTC),
			seq:  1,
			want: "ORD-20250530-000001",
		},
		{
			name: "date is taken in UTC",
			at:   time.Date(2025, 5, 31, 1, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60)),
			seq:  42,
			want: "ORD-20250530-000042",
		},
		{
			name: "wide sequence values are not truncated",
			at:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			seq:  1234567,
			want: "ORD-20250102-1234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := order.NewID(tt.at, tt.seq)

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
			require.NoError(t, id.Validate())
		})
	}

	_, err := order.NewID(time.Now(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseID(t *testing.T) {
	id, err := order.ParseID(" ORD-20250530-000001 ")
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250530-000001", id.String())

	for _, bad := range []string{"", "ORD-2025053-000001", "ord-20250530-000001", "ORD-20250530-01", "ORD-20250530-000001x"} {
		_, err := order.ParseID(bad)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}
