package hero_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innohub/api/internal/content/hero"
	"github.com/innohub/api/internal/platform/apperr"
	"github.com/innohub/api/internal/platform/cache"
)

type fakeRepository struct {
	nextID int64
	heroes map[int64]*hero.Hero

	activeListCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, heroes: map[int64]*hero.Hero{}}
}

func (r *fakeRepository) ListActiveHeroes(_ context.Context) ([]*hero.Hero, error) {
	r.activeListCalls++
	active := make([]*hero.Hero, 0)
	for _, h := range r.heroes {
		if h.IsActive {
			clone := *h
			active = append(active, &clone)
		}
	}
	return active, nil
}

func (r *fakeRepository) ListHeroes(_ context.Context, _, _ int) ([]*hero.Hero, int, error) {
	all := make([]*hero.Hero, 0, len(r.heroes))
	for _, h := range r.heroes {
		clone := *h
		all = append(all, &clone)
	}
	return all, len(all), nil
}

func (r *fakeRepository) GetHero(_ context.Context, id int64) (*hero.Hero, error) {
	h, ok := r.heroes[id]
	if !ok {
		return nil, apperr.NotFound("Hero section")
	}
	clone := *h
	return &clone, nil
}

func (r *fakeRepository) CreateHero(_ context.Context, h *hero.Hero) error {
	h.ID = r.nextID
	r.nextID++
	clone := *h
	r.heroes[h.ID] = &clone
	return nil
}

func (r *fakeRepository) UpdateHero(_ context.Context, h *hero.Hero) error {
	if _, ok := r.heroes[h.ID]; !ok {
		return apperr.NotFound("Hero section")
	}
	clone := *h
	r.heroes[h.ID] = &clone
	return nil
}

func (r *fakeRepository) DeleteHero(_ context.Context, id int64) error {
	if _, ok := r.heroes[id]; !ok {
		return apperr.NotFound("Hero section")
	}
	delete(r.heroes, id)
	return nil
}

func (r *fakeRepository) SetHeroActive(_ context.Context, id int64, active bool) error {
	h, ok := r.heroes[id]
	if !ok {
		return apperr.NotFound("Hero section")
	}
	h.IsActive = active
	return nil
}

func testService(t *testing.T) (*hero.Service, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	logger := slog.New(slog.DiscardHandler)

	// A nil Redis client yields a disabled cache: every read goes to the repo.
	return hero.NewService(repo, cache.NewStore(nil, logger), logger), repo
}

func strPtr(s string) *string { return &s }

/*
TestCreateHero checks required-field and URL validation.
*/
func TestCreateHero(t *testing.T) {
	service, repo := testService(t)

	t.Run("success", func(t *testing.T) {
		h := &hero.Hero{Title: "Build the Future", ImageURL: strPtr("https://cdn.innohub.io/hero.png"), IsActive: true}
		require.NoError(t, service.CreateHero(context.Background(), h))
		assert.NotZero(t, h.ID)
		assert.Len(t, repo.heroes, 1)
	})

	t.Run("missing_title", func(t *testing.T) {
		err := service.CreateHero(context.Background(), &hero.Hero{})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("bad_image_url", func(t *testing.T) {
		err := service.CreateHero(context.Background(), &hero.Hero{Title: "x", ImageURL: strPtr("not-a-url")})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

/*
TestListActive checks that only visible slides reach the public site.
*/
func TestListActive(t *testing.T) {
	service, _ := testService(t)

	require.NoError(t, service.CreateHero(context.Background(), &hero.Hero{Title: "Visible", IsActive: true}))
	require.NoError(t, service.CreateHero(context.Background(), &hero.Hero{Title: "Hidden", IsActive: false}))

	active, err := service.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Visible", active[0].Title)
}

/*
TestToggleActive checks the visibility flip round trip.
*/
func TestToggleActive(t *testing.T) {
	service, repo := testService(t)

	h := &hero.Hero{Title: "Slide", IsActive: true}
	require.NoError(t, service.CreateHero(context.Background(), h))

	toggled, err := service.ToggleActive(context.Background(), h.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
	assert.False(t, repo.heroes[h.ID].IsActive)

	toggled, err = service.ToggleActive(context.Background(), h.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	_, err = service.ToggleActive(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestUpdateHero checks full-replace semantics and the missing-row case.
*/
func TestUpdateHero(t *testing.T) {
	service, repo := testService(t)

	h := &hero.Hero{Title: "Before", IsActive: true}
	require.NoError(t, service.CreateHero(context.Background(), h))

	err := service.UpdateHero(context.Background(), h.ID, &hero.Hero{Title: "After", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "After", repo.heroes[h.ID].Title)

	err = service.UpdateHero(context.Background(), 999, &hero.Hero{Title: "Ghost"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
