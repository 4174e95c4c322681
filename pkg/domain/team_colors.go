package domain

import (
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// TeamColors are the brand colors of an organization as #RRGGBB values.
type TeamColors struct {
	primary   string
	secondary string
}

// NewTeamColors validates colors. Primary is required; secondary is
// optional. Values are normalized to upper case.
func NewTeamColors(primary, secondary string) (TeamColors, error) {
	primary = strings.ToUpper(strings.TrimSpace(primary))
	secondary = strings.ToUpper(strings.TrimSpace(secondary))

	if !hexColor.MatchString(primary) {
		return TeamColors{}, invalid("primary color must be a #RRGGBB value")
	}
	if secondary != "" && !hexColor.MatchString(secondary) {
		return TeamColors{}, invalid("secondary color must be a #RRGGBB value")
	}

	return TeamColors{primary: primary, secondary: secondary}, nil
}

func (c TeamColors) Primary() string   { return c.primary }
func (c TeamColors) Secondary() string { return c.secondary }
