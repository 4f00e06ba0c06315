package flight

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFlightAPI struct {
	mock.Mock
}

func (m *mockFlightAPI) FetchLegOptions(ctx context.Context, origin, destination, date string) (*LegPayload, error) {
	args := m.Called(ctx, origin, destination, date)
	p, _ := args.Get(0).(*LegPayload)
	return p, args.Error(1)
}

type mockIataLookup struct {
	mock.Mock
}

func (m *mockIataLookup) IataExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// iataSet is a fixed in-memory IataLookup.
type iataSet map[string]bool

func (s iataSet) IataExists(_ context.Context, code string) (bool, error) {
	return s[code], nil
}

func knownCodes(codes ...string) iataSet {
	set := make(iataSet, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}

func loadPayload(t *testing.T, name string) *LegPayload {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	var p LegPayload
	require.NoError(t, json.Unmarshal(b, &p))
	return &p
}

func ptr(f float64) *float64 {
	return &f
}
