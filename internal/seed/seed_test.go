package seed

import (
	"context"
	"testing"
	"time"

	"booking-app/internal/domain/shows"
	"booking-app/internal/domain/venues"
	"booking-app/internal/repo"
	"booking-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	vr, ar, sr := repo.NewVenueRepo(db), repo.NewArtistRepo(db), repo.NewShowRepo(db)

	res, err := Run(ctx, vr, ar, sr, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Result{Venues: 3, Artists: 3, Shows: 5}, res)

	again, err := Run(ctx, vr, ar, sr, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Result{}, again)

	n, err := sr.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	list, err := vr.List(ctx)
	require.NoError(t, err)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	counts, err := sr.UpcomingCounts(ctx, shows.RoleVenue, nil, now)
	require.NoError(t, err)

	groups := venues.GroupByLocation(list, counts)
	require.Len(t, groups, 2)
	assert.Equal(t, "San Francisco", groups[0].City)
	require.Len(t, groups[0].Venues, 2)
	assert.Equal(t, "Park Square Live Music & Coffee", groups[0].Venues[0].Name)
	assert.Equal(t, 3, groups[0].Venues[0].NumUpcomingShows)
	assert.Equal(t, 0, groups[0].Venues[1].NumUpcomingShows)
	assert.Equal(t, "New York", groups[1].City)
}
