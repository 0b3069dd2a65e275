package storage

import (
	"context"
	"errors"

	"github.com/Teflondom25/LFG-Bot/internal/game"
)

// ErrUnavailable indicates the backing store could not be reached or
// rejected the request. Callers report it to the user as a generic
// transient failure; the wrapped cause is for operator logs.
var ErrUnavailable = errors.New("subscription store unavailable")

// GameCount pairs a game with its current subscriber count.
type GameCount struct {
	Key   game.Key
	Count int
}

// SubscriptionStore persists per-guild game subscriptions. All mutations
// are idempotent set operations applied atomically by the backing store,
// so concurrent calls for different users on the same game never lose
// each other's updates. Implementations never retry; a communication
// failure surfaces as ErrUnavailable.
type SubscriptionStore interface {
	// Subscribe adds the user to the game's subscriber set, creating the
	// record if it does not exist. Subscribing twice is a no-op.
	Subscribe(ctx context.Context, guildID string, key game.Key, userID string) error

	// Unsubscribe removes the user from the game's subscriber set.
	// Removing an absent user, or removing from a game that was never
	// subscribed to, succeeds without error.
	Unsubscribe(ctx context.Context, guildID string, key game.Key, userID string) error

	// Subscribers returns the subscriber set for a game. A game with no
	// record yields an empty result.
	Subscribers(ctx context.Context, guildID string, key game.Key) ([]string, error)

	// UserGames returns every game in the guild the user is subscribed to.
	UserGames(ctx context.Context, guildID, userID string) ([]game.Key, error)

	// PopulatedGames returns every game in the guild with at least one
	// subscriber, in no particular order.
	PopulatedGames(ctx context.Context, guildID string) ([]GameCount, error)

	// AllGameKeys returns every game key with a record in the guild,
	// including records whose subscriber set has emptied out.
	AllGameKeys(ctx context.Context, guildID string) ([]game.Key, error)
}
