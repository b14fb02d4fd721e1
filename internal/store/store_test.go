package store

import (
	"context"
	"log"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/VishardMehta/TextDrop/internal/database"
	"github.com/VishardMehta/TextDrop/internal/keygen"
	"github.com/VishardMehta/TextDrop/internal/model"
)

var testStore *ContentStore

func TestMain(m *testing.M) {
	teardown, db, err := database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	testStore = NewContentStore(db)

	m.Run()

	if teardown != nil && teardown(context.Background()) != nil {
		log.Fatal("could not teardown postgres container")
	}
}

func TestTryCreateAndLookup(t *testing.T) {
	record := &model.SharedContent{
		ShortKey: "aB3xY9",
		Content:  []byte("hello world"),
	}

	require.NoError(t, testStore.TryCreate(context.Background(), record))

	got, err := testStore.Lookup(context.Background(), "aB3xY9")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, got.ID)
	require.Equal(t, []byte("hello world"), got.Content)
	require.False(t, got.IsFile)
	require.False(t, got.CreatedAt.IsZero())
}

func TestTryCreate_DuplicateKeyLeavesOriginalUntouched(t *testing.T) {
	original := &model.SharedContent{
		ShortKey: "dupKey",
		Content:  []byte("first wins"),
	}
	require.NoError(t, testStore.TryCreate(context.Background(), original))

	second := &model.SharedContent{
		ShortKey: "dupKey",
		Content:  []byte("second loses"),
	}
	err := testStore.TryCreate(context.Background(), second)
	require.ErrorIs(t, err, ErrKeyTaken)

	got, err := testStore.Lookup(context.Background(), "dupKey")
	require.NoError(t, err)
	require.Equal(t, []byte("first wins"), got.Content)
}

func TestTryCreate_RaceOnSameKey(t *testing.T) {
	const racers = 10

	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = testStore.TryCreate(context.Background(), &model.SharedContent{
				ShortKey: "raceKy",
				Content:  []byte{byte(i)},
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, ErrKeyTaken)
		}
	}
	require.Equal(t, 1, winners, "exactly one concurrent insert must win")
}

func TestTryCreate_ConcurrentDistinctKeys(t *testing.T) {
	const writers = 25

	var wg sync.WaitGroup
	keys := make([]string, writers)
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys[i] = keygen.Generate()
			errs[i] = testStore.TryCreate(context.Background(), &model.SharedContent{
				ShortKey: keys[i],
				Content:  []byte(keys[i]),
			})
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for i := 0; i < writers; i++ {
		require.NoError(t, errs[i])
		require.False(t, seen[keys[i]], "key %q returned twice", keys[i])
		seen[keys[i]] = true

		got, err := testStore.Lookup(context.Background(), keys[i])
		require.NoError(t, err)
		require.Equal(t, []byte(keys[i]), got.Content)
	}
}

func TestLookup_NotFound(t *testing.T) {
	_, err := testStore.Lookup(context.Background(), "zzzzzz")
	require.ErrorIs(t, err, ErrNotFound)
}
