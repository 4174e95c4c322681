package domain

import (
	"fanvote/pkg/serrors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxOrganizationNameLength = 200
	maxTeamShortNameLength    = 10
	maxOrganizationDescLength = 4000
	minFormedYear             = 1800
)

// Organization is the aggregate root for a team. It exclusively owns its
// players and player options, in creation order; everything outside the
// aggregate only sees copies. While locked, no option can be created and no
// player can be added or removed. Voting on existing options is unaffected
// by the lock.
type Organization struct {
	id            OrganizationID
	leagueID      LeagueID
	name          string
	teamID        string
	teamName      string
	teamShortName string
	formedYear    int
	sport         string
	description   string
	venue         Venue
	media         MediaAssets
	social        SocialLinks
	colors        TeamColors
	locked        bool
	lockReason    string
	lockedAt      time.Time
	createdAt     time.Time
	version       int64

	options []*PlayerOption
	players []*Player
}

// OrganizationParams carries the input of NewOrganization. Value objects are
// pointers so that a missing one can be told apart from an empty one; all
// four are required. Team fields are optional external references.
type OrganizationParams struct {
	LeagueID      LeagueID
	Name          string
	TeamID        string
	TeamName      string
	TeamShortName string
	FormedYear    int
	Sport         string
	Description   string
	Venue         *Venue
	MediaAssets   *MediaAssets
	SocialLinks   *SocialLinks
	TeamColors    *TeamColors
}

// NewOrganization validates params and returns an unlocked organization
// without players or options.
func NewOrganization(p OrganizationParams, now time.Time) (*Organization, error) {
	if err := requireID("league id", p.LeagueID); err != nil {
		return nil, err
	}
	switch {
	case p.Venue == nil:
		return nil, invalid("venue is required")
	case p.MediaAssets == nil:
		return nil, invalid("media assets are required")
	case p.SocialLinks == nil:
		return nil, invalid("social links are required")
	case p.TeamColors == nil:
		return nil, invalid("team colors are required")
	}

	name, err := validateOrganizationName(p.Name)
	if err != nil {
		return nil, err
	}
	description, err := validateOrganizationDescription(p.Description)
	if err != nil {
		return nil, err
	}

	shortName := strings.TrimSpace(p.TeamShortName)
	if utf8.RuneCountInString(shortName) > maxTeamShortNameLength {
		return nil, invalid("team short name must be at most %d characters", maxTeamShortNameLength)
	}
	if p.FormedYear != 0 && (p.FormedYear < minFormedYear || p.FormedYear > now.Year()) {
		return nil, invalid("formed year must be between %d and %d", minFormedYear, now.Year())
	}

	return &Organization{
		id:            NewOrganizationID(),
		leagueID:      p.LeagueID,
		name:          name,
		teamID:        strings.TrimSpace(p.TeamID),
		teamName:      strings.TrimSpace(p.TeamName),
		teamShortName: shortName,
		formedYear:    p.FormedYear,
		sport:         strings.TrimSpace(p.Sport),
		description:   description,
		venue:         *p.Venue,
		media:         *p.MediaAssets,
		social:        *p.SocialLinks,
		colors:        *p.TeamColors,
		createdAt:     now,
	}, nil
}

func validateOrganizationName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", invalid("organization name is required")
	case utf8.RuneCountInString(name) > maxOrganizationNameLength:
		return "", invalid("organization name must be at most %d characters", maxOrganizationNameLength)
	}

	return name, nil
}

func validateOrganizationDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > maxOrganizationDescLength {
		return "", invalid("organization description must be at most %d characters", maxOrganizationDescLength)
	}

	return description, nil
}

func (o *Organization) ID() OrganizationID       { return o.id }
func (o *Organization) LeagueID() LeagueID       { return o.leagueID }
func (o *Organization) Name() string             { return o.name }
func (o *Organization) TeamID() string           { return o.teamID }
func (o *Organization) TeamName() string         { return o.teamName }
func (o *Organization) TeamShortName() string    { return o.teamShortName }
func (o *Organization) FormedYear() int          { return o.formedYear }
func (o *Organization) Sport() string            { return o.sport }
func (o *Organization) Description() string      { return o.description }
func (o *Organization) Venue() Venue             { return o.venue }
func (o *Organization) MediaAssets() MediaAssets { return o.media }
func (o *Organization) SocialLinks() SocialLinks { return o.social }
func (o *Organization) TeamColors() TeamColors   { return o.colors }
func (o *Organization) IsLocked() bool           { return o.locked }
func (o *Organization) LockReason() string       { return o.lockReason }
func (o *Organization) LockedAt() time.Time      { return o.lockedAt }
func (o *Organization) CreatedAt() time.Time     { return o.createdAt }
func (o *Organization) Version() int64           { return o.version }

// PlayerOptions returns copies of the owned options in creation order.
func (o *Organization) PlayerOptions() []PlayerOption {
	out := make([]PlayerOption, len(o.options))
	for i, opt := range o.options {
		out[i] = *opt
	}

	return out
}

// PlayerOption returns a copy of the option with the given id.
func (o *Organization) PlayerOption(id PlayerOptionID) (PlayerOption, bool) {
	if opt := o.findOption(id); opt != nil {
		return *opt, true
	}

	return PlayerOption{}, false
}

// Players returns copies of the owned players in the order they were added.
func (o *Organization) Players() []Player {
	out := make([]Player, len(o.players))
	for i, p := range o.players {
		out[i] = *p
	}

	return out
}

// Player returns a copy of the player with the given id.
func (o *Organization) Player(id PlayerID) (Player, bool) {
	if _, p := o.findPlayer(id); p != nil {
		return *p, true
	}

	return Player{}, false
}

// Lock blocks structural changes. A reason is required and locking twice is
// an error.
func (o *Organization) Lock(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return invalid("lock reason is required")
	}
	if o.locked {
		return invalidState("organization %s is already locked", o.id)
	}
	o.locked, o.lockReason, o.lockedAt = true, reason, now

	return nil
}

// Unlock lifts the lock. Unlocking an unlocked organization is an error.
func (o *Organization) Unlock() error {
	if !o.locked {
		return invalidState("organization %s is not locked", o.id)
	}
	o.locked, o.lockReason, o.lockedAt = false, "", time.Time{}

	return nil
}

func (o *Organization) ensureUnlocked() error {
	if o.locked {
		return serrors.With(ErrLockedOrganization, "organization %s is locked: %s", o.id, o.lockReason)
	}

	return nil
}

// Rename changes the display name.
func (o *Organization) Rename(name string) error {
	name, err := validateOrganizationName(name)
	if err != nil {
		return err
	}
	o.name = name

	return nil
}

// UpdateDescription replaces the free-form description.
func (o *Organization) UpdateDescription(description string) error {
	description, err := validateOrganizationDescription(description)
	if err != nil {
		return err
	}
	o.description = description

	return nil
}

// ReplaceVenue swaps the venue for a new one.
func (o *Organization) ReplaceVenue(v Venue) error {
	if v.name == "" {
		return invalid("venue is required")
	}
	o.venue = v

	return nil
}

// ReplaceMediaAssets swaps the media assets for new ones.
func (o *Organization) ReplaceMediaAssets(m MediaAssets) { o.media = m }

// ReplaceSocialLinks swaps the social links for new ones.
func (o *Organization) ReplaceSocialLinks(s SocialLinks) { o.social = s }

// ReplaceTeamColors swaps the team colors for new ones.
func (o *Organization) ReplaceTeamColors(c TeamColors) error {
	if c.primary == "" {
		return invalid("team colors are required")
	}
	o.colors = c

	return nil
}

// CreatePlayerOption adds a new option about one of the organization's
// players. It fails while the organization is locked.
func (o *Organization) CreatePlayerOption(
	title, description string,
	playerID PlayerID,
	expiresAt *time.Time,
	now time.Time,
) (PlayerOption, error) {
	if err := o.ensureUnlocked(); err != nil {
		return PlayerOption{}, err
	}
	if _, p := o.findPlayer(playerID); p == nil {
		return PlayerOption{}, serrors.With(ErrNotFound, "player %s is not part of organization %s", playerID, o.id)
	}

	opt, err := NewPlayerOption(title, description, playerID, o.id, expiresAt, now)
	if err != nil {
		return PlayerOption{}, err
	}
	o.options = append(o.options, opt)

	return *opt, nil
}

// RemovePlayerOption drops an option. Only expired options can be removed.
func (o *Organization) RemovePlayerOption(id PlayerOptionID, now time.Time) error {
	for i, opt := range o.options {
		if opt.id != id {
			continue
		}
		if opt.IsActive(now) {
			return invalidState("player option %s is still active", id)
		}
		o.options = append(o.options[:i], o.options[i+1:]...)

		return nil
	}

	return serrors.With(ErrNotFound, "player option %s not found", id)
}

// UpdatePlayerOptionDetails changes the title and description of an option.
func (o *Organization) UpdatePlayerOptionDetails(id PlayerOptionID, title, description string, now time.Time) error {
	opt := o.findOption(id)
	if opt == nil {
		return serrors.With(ErrNotFound, "player option %s not found", id)
	}

	return opt.UpdateDetails(title, description, now)
}

// ExtendPlayerOptionExpiry moves the expiry of an option later.
func (o *Organization) ExtendPlayerOptionExpiry(id PlayerOptionID, expiresAt, now time.Time) error {
	opt := o.findOption(id)
	if opt == nil {
		return serrors.With(ErrNotFound, "player option %s not found", id)
	}

	return opt.ExtendExpiry(expiresAt, now)
}

// ExpirePlayerOption ends voting on an option immediately.
func (o *Organization) ExpirePlayerOption(id PlayerOptionID, now time.Time) error {
	opt := o.findOption(id)
	if opt == nil {
		return serrors.With(ErrNotFound, "player option %s not found", id)
	}

	return opt.ExpireNow(now)
}

// AddPlayer takes ownership of a copy of p. The player must belong to the
// organization's league.
func (o *Organization) AddPlayer(p *Player) error {
	if err := o.ensureUnlocked(); err != nil {
		return err
	}
	if p == nil {
		return invalid("player is required")
	}
	if p.leagueID != o.leagueID {
		return invalid("player %s belongs to another league", p.id)
	}
	if _, existing := o.findPlayer(p.id); existing != nil {
		return invalidState("player %s is already part of organization %s", p.id, o.id)
	}

	cp := *p
	o.players = append(o.players, &cp)

	return nil
}

// RemovePlayer drops a player from the squad. A player still featured by an
// active option stays until the option expires or is expired; expired
// options keep the reference to the removed player.
func (o *Organization) RemovePlayer(id PlayerID, now time.Time) error {
	if err := o.ensureUnlocked(); err != nil {
		return err
	}

	i, p := o.findPlayer(id)
	if p == nil {
		return serrors.With(ErrNotFound, "player %s not found", id)
	}
	for _, opt := range o.options {
		if opt.playerID == id && opt.IsActive(now) {
			return invalidState("player %s is featured by active option %s", id, opt.id)
		}
	}
	o.players = append(o.players[:i], o.players[i+1:]...)

	return nil
}

// SetPlayerActive marks a player as active or inactive. Inactive players
// still count for averages but not for the active count or market value.
func (o *Organization) SetPlayerActive(id PlayerID, active bool) error {
	_, p := o.findPlayer(id)
	if p == nil {
		return serrors.With(ErrNotFound, "player %s not found", id)
	}
	p.active = active

	return nil
}

// CanCreatePlayerOptions reports whether CreatePlayerOption may succeed.
func (o *Organization) CanCreatePlayerOptions() bool {
	return !o.locked && len(o.players) > 0
}

// ActivePlayerOptionsCount counts options accepting votes at now.
func (o *Organization) ActivePlayerOptionsCount(now time.Time) int {
	n := 0
	for _, opt := range o.options {
		if opt.IsActive(now) {
			n++
		}
	}

	return n
}

// TotalVotes sums the votes of every option, expired ones included.
func (o *Organization) TotalVotes() int64 {
	var total int64
	for _, opt := range o.options {
		total += opt.votes
	}

	return total
}

// MostPopularPlayerOption returns the active option with the most votes.
// Ties go to the option created first.
func (o *Organization) MostPopularPlayerOption(now time.Time) (PlayerOption, bool) {
	var best *PlayerOption
	for _, opt := range o.options {
		if !opt.IsActive(now) {
			continue
		}
		if best == nil || opt.votes > best.votes {
			best = opt
		}
	}
	if best == nil {
		return PlayerOption{}, false
	}

	return *best, true
}

// TrendingPlayerOptions returns the trending options by votes, descending.
// Equal counts keep creation order.
func (o *Organization) TrendingPlayerOptions(now time.Time) []PlayerOption {
	var out []PlayerOption
	for _, opt := range o.options {
		if opt.IsTrending(now) {
			out = append(out, *opt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].votes > out[j].votes })

	return out
}

// AveragePlayerAge is the mean age of all players at now, or 0 without players.
func (o *Organization) AveragePlayerAge(now time.Time) float64 {
	if len(o.players) == 0 {
		return 0
	}

	total := 0
	for _, p := range o.players {
		total += p.AgeAt(now)
	}

	return float64(total) / float64(len(o.players))
}

// ActivePlayersCount counts active players.
func (o *Organization) ActivePlayersCount() int {
	n := 0
	for _, p := range o.players {
		if p.active {
			n++
		}
	}

	return n
}

// TotalMarketValue sums Player.MarketValueAt over active players.
func (o *Organization) TotalMarketValue(now time.Time) int64 {
	var total int64
	for _, p := range o.players {
		if p.active {
			total += p.MarketValueAt(now)
		}
	}

	return total
}

func (o *Organization) findOption(id PlayerOptionID) *PlayerOption {
	for _, opt := range o.options {
		if opt.id == id {
			return opt
		}
	}

	return nil
}

func (o *Organization) findPlayer(id PlayerID) (int, *Player) {
	for i, p := range o.players {
		if p.id == id {
			return i, p
		}
	}

	return -1, nil
}

// OrganizationState is the persisted form of an Organization, children
// included.
type OrganizationState struct {
	ID            OrganizationID
	LeagueID      LeagueID
	Name          string
	TeamID        string
	TeamName      string
	TeamShortName string
	FormedYear    int
	Sport         string
	Description   string
	Venue         Venue
	MediaAssets   MediaAssets
	SocialLinks   SocialLinks
	TeamColors    TeamColors
	Locked        bool
	LockReason    string
	LockedAt      time.Time
	CreatedAt     time.Time
	Version       int64
	PlayerOptions []PlayerOptionState
	Players       []PlayerState
}

// State returns the persisted form of o.
func (o *Organization) State() OrganizationState {
	s := OrganizationState{
		ID:            o.id,
		LeagueID:      o.leagueID,
		Name:          o.name,
		TeamID:        o.teamID,
		TeamName:      o.teamName,
		TeamShortName: o.teamShortName,
		FormedYear:    o.formedYear,
		Sport:         o.sport,
		Description:   o.description,
		Venue:         o.venue,
		MediaAssets:   o.media,
		SocialLinks:   o.social,
		TeamColors:    o.colors,
		Locked:        o.locked,
		LockReason:    o.lockReason,
		LockedAt:      o.lockedAt,
		CreatedAt:     o.createdAt,
		Version:       o.version,
		PlayerOptions: make([]PlayerOptionState, len(o.options)),
		Players:       make([]PlayerState, len(o.players)),
	}
	for i, opt := range o.options {
		s.PlayerOptions[i] = opt.State()
	}
	for i, p := range o.players {
		s.Players[i] = p.State()
	}

	return s
}

// RestoreOrganization rebuilds an aggregate from storage.
func RestoreOrganization(s OrganizationState) (*Organization, error) {
	if err := requireID("organization id", s.ID); err != nil {
		return nil, err
	}
	if err := requireID("league id", s.LeagueID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.Name) == "" {
		return nil, invalid("organization name is required")
	}

	o := &Organization{
		id:            s.ID,
		leagueID:      s.LeagueID,
		name:          s.Name,
		teamID:        s.TeamID,
		teamName:      s.TeamName,
		teamShortName: s.TeamShortName,
		formedYear:    s.FormedYear,
		sport:         s.Sport,
		description:   s.Description,
		venue:         s.Venue,
		media:         s.MediaAssets,
		social:        s.SocialLinks,
		colors:        s.TeamColors,
		locked:        s.Locked,
		lockReason:    s.LockReason,
		lockedAt:      s.LockedAt,
		createdAt:     s.CreatedAt,
		version:       s.Version,
		options:       make([]*PlayerOption, 0, len(s.PlayerOptions)),
		players:       make([]*Player, 0, len(s.Players)),
	}
	for _, ps := range s.Players {
		p, err := RestorePlayer(ps)
		if err != nil {
			return nil, err
		}
		o.players = append(o.players, p)
	}
	for _, st := range s.PlayerOptions {
		if st.OrganizationID != s.ID {
			return nil, violation("player option %s belongs to organization %s", st.ID, st.OrganizationID)
		}
		opt, err := RestorePlayerOption(st)
		if err != nil {
			return nil, err
		}
		o.options = append(o.options, opt)
	}

	return o, nil
}
