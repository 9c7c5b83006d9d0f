package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRoundTrips(t *testing.T) {
	for _, v := range Regions {
		byCode, err := ByCode(Regions, v.Code)
		require.NoError(t, err)
		assert.Equal(t, v, byCode)

		byName, err := ByName(Regions, v.Name)
		require.NoError(t, err)
		assert.Equal(t, v, byName)

		byFull, err := ByFullName(Regions, v.FullName)
		require.NoError(t, err)
		assert.Equal(t, v, byFull)
	}
	for _, v := range Races {
		byCode, err := ByCode(Races, v.Code)
		require.NoError(t, err)
		assert.Equal(t, v, byCode)

		byName, err := ByName(Races, v.Name)
		require.NoError(t, err)
		assert.Equal(t, v, byName)
	}
	for _, v := range Leagues {
		byCode, err := ByCode(Leagues, v.Code)
		require.NoError(t, err)
		assert.Equal(t, v, byCode)

		byName, err := ByName(Leagues, v.Name)
		require.NoError(t, err)
		assert.Equal(t, v, byName)
	}
	for _, v := range LeagueTiers {
		byCode, err := ByCode(LeagueTiers, v.Code)
		require.NoError(t, err)
		assert.Equal(t, v, byCode)
	}
	for _, v := range TeamFormats {
		byFull, err := ByFullName(TeamFormats, v.FullName)
		require.NoError(t, err)
		assert.Equal(t, v, byFull)
	}
	for _, v := range TeamTypes {
		byName, err := ByName(TeamTypes, v.Name)
		require.NoError(t, err)
		assert.Equal(t, v, byName)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	region, err := ByName(Regions, "EU")
	require.NoError(t, err)
	assert.Equal(t, 2, region.Code)

	league, err := ByFullName(Leagues, "grandmaster")
	require.NoError(t, err)
	assert.Equal(t, "gra", league.Short)

	race, err := ByName(Races, "TeRRan")
	require.NoError(t, err)
	assert.Equal(t, "TERRAN", race.FullName)
}

func TestLookupNotFound(t *testing.T) {
	_, err := ByName(Regions, "mars")
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "mars", notFound.Key)

	_, err = ByCode(Leagues, 99)
	require.Error(t, err)
	assert.True(t, errors.As(err, &notFound))
}

func TestFindTolerantLookups(t *testing.T) {
	_, ok := FindByCode(Regions, 4)
	assert.False(t, ok)

	_, ok = FindByName(Leagues, "wood")
	assert.False(t, ok)

	league, ok := FindByCode(Leagues, 6)
	require.True(t, ok)
	assert.Equal(t, "grandmaster", league.Name)
}

func TestCatalogIdentityUniqueness(t *testing.T) {
	codes := map[int]bool{}
	names := map[string]bool{}
	for _, v := range Leagues {
		assert.False(t, codes[v.Code], "duplicate code %d", v.Code)
		assert.False(t, names[v.Name], "duplicate name %s", v.Name)
		codes[v.Code] = true
		names[v.Name] = true
	}
}

func TestRaceDeclarationOrder(t *testing.T) {
	// FavoriteRace tie-breaking depends on this exact order.
	want := []string{"terran", "protoss", "zerg", "random"}
	for i, race := range Races {
		assert.Equal(t, want[i], race.Name)
	}
}

func TestStartCursor(t *testing.T) {
	cursor := StartCursor(5000)
	assert.Equal(t, 5001, cursor.Rating)
	assert.Equal(t, int64(1), cursor.ID)
}
