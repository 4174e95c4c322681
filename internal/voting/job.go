package voting

import (
	"fanvote/pkg/domain"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// LeaderboardJobArgs asks a worker to copy the current vote count of one
// player option into the leaderboard. It is enqueued in the same
// transaction as the vote change, so it runs only for committed changes.
type LeaderboardJobArgs struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	PlayerOptionID uuid.UUID `json:"player_option_id"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewLeaderboardJobArgs builds the refresh job for option.
func NewLeaderboardJobArgs(option *domain.PlayerOption, maxAttempts int) LeaderboardJobArgs {
	return LeaderboardJobArgs{
		OrganizationID: uuid.UUID(option.OrganizationID()),
		PlayerOptionID: uuid.UUID(option.ID()),
		maxAttempts:    maxAttempts,
	}
}

// Kind returns the River job kind used to register and dispatch the leaderboard worker.
func (args LeaderboardJobArgs) Kind() string { return "RefreshLeaderboardJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// Jobs are not unique: a refresh already running may have read the count
// before the change that enqueued this one.
func (args LeaderboardJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: args.maxAttempts}
}
