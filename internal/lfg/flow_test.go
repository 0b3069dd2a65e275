package lfg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Teflondom25/LFG-Bot/internal/game"
	"github.com/Teflondom25/LFG-Bot/internal/storage"
)

// memStore is an in-memory SubscriptionStore used to exercise the full
// subscribe -> broadcast flow without a real backend.
type memStore struct {
	records map[string]map[game.Key]map[string]struct{}
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]map[game.Key]map[string]struct{})}
}

func (m *memStore) Subscribe(_ context.Context, guildID string, key game.Key, userID string) error {
	guild, ok := m.records[guildID]
	if !ok {
		guild = make(map[game.Key]map[string]struct{})
		m.records[guildID] = guild
	}
	subs, ok := guild[key]
	if !ok {
		subs = make(map[string]struct{})
		guild[key] = subs
	}
	subs[userID] = struct{}{}
	return nil
}

func (m *memStore) Unsubscribe(_ context.Context, guildID string, key game.Key, userID string) error {
	delete(m.records[guildID][key], userID)
	return nil
}

func (m *memStore) Subscribers(_ context.Context, guildID string, key game.Key) ([]string, error) {
	var subs []string
	for id := range m.records[guildID][key] {
		subs = append(subs, id)
	}
	return subs, nil
}

func (m *memStore) UserGames(_ context.Context, guildID, userID string) ([]game.Key, error) {
	var keys []game.Key
	for key, subs := range m.records[guildID] {
		if _, ok := subs[userID]; ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (m *memStore) PopulatedGames(_ context.Context, guildID string) ([]storage.GameCount, error) {
	var games []storage.GameCount
	for key, subs := range m.records[guildID] {
		if len(subs) > 0 {
			games = append(games, storage.GameCount{Key: key, Count: len(subs)})
		}
	}
	return games, nil
}

func (m *memStore) AllGameKeys(_ context.Context, guildID string) ([]game.Key, error) {
	var keys []game.Key
	for key := range m.records[guildID] {
		keys = append(keys, key)
	}
	return keys, nil
}

// Two users subscribe under differently-spelled names for the same game;
// both land on one record, and an LFG from the first pings only the second.
func TestSubscribeThenBroadcastFlow(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	require.NoError(t, store.Subscribe(ctx, "guildG", game.Normalize("Destiny 2"), "U1"))
	require.NoError(t, store.Subscribe(ctx, "guildG", game.Normalize("destiny 2"), "U2"))

	keys, err := store.AllGameKeys(ctx, "guildG")
	require.NoError(t, err)
	require.Equal(t, []game.Key{"destiny-2"}, keys)

	subs, err := store.Subscribers(ctx, "guildG", game.Key("destiny-2"))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"U1", "U2"}, subs)

	plan := Compose(game.Normalize("Destiny 2"), "U1", subs, "")
	assert.Equal(t, []string{"U2"}, plan.Targets)
	assert.Contains(t, plan.Text, "LFG for Destiny 2!")
}
