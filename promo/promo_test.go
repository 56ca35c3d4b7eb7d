package promo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-pricing/promo"
)

func TestNewValidates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		code     string
		percent  int
		validFor time.Duration
		wantErr  bool
	}{
		{name: "valid", code: "WELCOME10", percent: 10, validFor: 24 * time.Hour},
		{name: "valid upper bound", code: "BLOWOUT", percent: 99, validFor: time.Hour},
		{name: "empty code", code: "", percent: 10, validFor: time.Hour, wantErr: true},
		{name: "zero percent", code: "FREE0", percent: 0, validFor: time.Hour, wantErr: true},
		{name: "percent too high", code: "ALL", percent: 100, validFor: time.Hour, wantErr: true},
		{name: "negative validity", code: "OLD", percent: 10, validFor: -time.Hour, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := promo.New(tc.code, tc.percent, tc.validFor)
			if tc.wantErr {
				require.ErrorIs(t, err, promo.ErrInvalidCode)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.code, got.Code)
			require.Equal(t, tc.percent, got.Percent)
			require.Equal(t, tc.validFor, got.ValidFor)
		})
	}
}

func TestRequiresPremium(t *testing.T) {
	t.Parallel()

	require.False(t, promo.Code{Code: "SMALL", Percent: 49}.RequiresPremium())
	require.True(t, promo.Code{Code: "BIG", Percent: 50}.RequiresPremium())
	require.True(t, promo.Code{Code: "HUGE", Percent: 99}.RequiresPremium())
}
