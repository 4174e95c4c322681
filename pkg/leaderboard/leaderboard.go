// Package leaderboard keeps a per organization ranking of player options by
// vote count in Redis sorted sets. The ranking is a read model: it is
// rebuilt from the database by background jobs and may briefly lag behind.
//
// Next to every sorted set a hash remembers the option version each score
// was read at, so a refresh that read an older version than the one already
// applied is dropped. Removed options are tombstoned in that hash and never
// come back.
//
//go:generate mockgen -package mockleaderboard -source=leaderboard.go -destination=mock/mockleaderboard.go Board
package leaderboard

import (
	"context"
	"errors"
	"fanvote/pkg/domain"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "fanvote"
	tombstone        = "removed"
)

// KEYS[1] ranking, KEYS[2] versions; ARGV[1] member, ARGV[2] votes, ARGV[3] version.
var setScoreScript = redis.NewScript(`
local cur = redis.call('HGET', KEYS[2], ARGV[1])
if cur then
	if cur == '` + tombstone + `' or tonumber(cur) >= tonumber(ARGV[3]) then
		return 0
	end
end
redis.call('HSET', KEYS[2], ARGV[1], ARGV[3])
redis.call('ZADD', KEYS[1], ARGV[2], ARGV[1])
return 1
`) //nolint: gochecknoglobals

// KEYS[1] ranking, KEYS[2] versions; ARGV[1] member.
var removeScript = redis.NewScript(`
redis.call('ZREM', KEYS[1], ARGV[1])
redis.call('HSET', KEYS[2], ARGV[1], '` + tombstone + `')
return 1
`) //nolint: gochecknoglobals

// Entry is one ranked option.
type Entry struct {
	PlayerOptionID domain.PlayerOptionID
	Votes          int64
}

// Board is the ranking used by the workflows and the ops surface.
type Board interface {
	// SetScore records the vote count of an option as read at version. It
	// reports false when a newer version was already applied or the option
	// was removed.
	SetScore(
		ctx context.Context,
		orgID domain.OrganizationID,
		optionID domain.PlayerOptionID,
		votes, version int64) (bool, error)
	// Remove drops an option from the ranking for good. Removing an unknown
	// option is not an error.
	Remove(ctx context.Context, orgID domain.OrganizationID, optionID domain.PlayerOptionID) error
	// Top returns up to n options with the most votes, highest first. Ties
	// are ordered by option id, descending.
	Top(ctx context.Context, orgID domain.OrganizationID, n int) ([]Entry, error)
}

// Options configures New.
type Options struct {
	// URL is a redis:// or rediss:// connection URL.
	URL string
	// KeyPrefix namespaces every key written by the board.
	KeyPrefix string
	// DialTimeout bounds connecting and the initial ping.
	DialTimeout time.Duration
}

// Redis implements Board on top of go-redis.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

// Ensure Redis implements Board.
var _ Board = (*Redis)(nil)

// New connects to Redis and checks the connection.
func New(ctx context.Context, opts Options) (*Redis, error) {
	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis url: %w", err)
	}
	if opts.DialTimeout > 0 {
		redisOpts.DialTimeout = opts.DialTimeout
	}

	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	r := &Redis{rdb: redis.NewClient(redisOpts), prefix: prefix}
	if err := r.Ping(ctx); err != nil {
		_ = r.rdb.Close()

		return nil, err
	}

	return r, nil
}

func (r *Redis) key(orgID domain.OrganizationID) string {
	return fmt.Sprintf("%s:leaderboard:org:%s", r.prefix, orgID)
}

func (r *Redis) versionsKey(orgID domain.OrganizationID) string {
	return r.key(orgID) + ":versions"
}

func (r *Redis) SetScore(
	ctx context.Context,
	orgID domain.OrganizationID,
	optionID domain.PlayerOptionID,
	votes, version int64) (bool, error) {
	keys := []string{r.key(orgID), r.versionsKey(orgID)}
	applied, err := setScoreScript.Run(ctx, r.rdb, keys, optionID.String(), votes, version).Int()
	if err != nil {
		return false, fmt.Errorf("could not set leaderboard score: %w", err)
	}

	return applied == 1, nil
}

func (r *Redis) Remove(ctx context.Context, orgID domain.OrganizationID, optionID domain.PlayerOptionID) error {
	keys := []string{r.key(orgID), r.versionsKey(orgID)}
	if err := removeScript.Run(ctx, r.rdb, keys, optionID.String()).Err(); err != nil {
		return fmt.Errorf("could not remove leaderboard entry: %w", err)
	}

	return nil
}

func (r *Redis) Top(ctx context.Context, orgID domain.OrganizationID, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}

	res, err := r.rdb.ZRevRangeWithScores(ctx, r.key(orgID), 0, int64(n-1)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("could not read leaderboard: %w", err)
	}

	entries := make([]Entry, 0, len(res))
	for _, z := range res {
		member, _ := z.Member.(string)
		id, err := uuid.Parse(member)
		if err != nil {
			return nil, fmt.Errorf("invalid leaderboard member %q: %w", member, err)
		}
		entries = append(entries, Entry{PlayerOptionID: domain.PlayerOptionID(id), Votes: int64(z.Score)})
	}

	return entries, nil
}

// Ping checks the connection.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis: %w", err)
	}

	return nil
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	if err := r.rdb.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
