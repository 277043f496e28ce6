package cache

import (
	"fmt"
	"strings"
	"time"
)

// Resource is a named category of cacheable data. The set is closed:
// every resource used at runtime must be registered in Policies.
type Resource string

const (
	ResourceTeam         Resource = "team"
	ResourceTeamDetails  Resource = "teamDetails"
	ResourceTeamPlayers  Resource = "teamPlayers"
	ResourcePlayer       Resource = "player"
	ResourceMatches      Resource = "matches"
	ResourceMatchDetails Resource = "matchDetails"
	ResourceMatchStats   Resource = "matchStats"
)

// keySeparator joins the version tag, resource name and key parts.
const keySeparator = "_"

// Policy holds the cache behavior for a single resource.
type Policy struct {
	// Version tags every key for the resource. Bump it ONLY when the
	// normalized response shape changes; old keys then simply stop
	// being looked up and expire via their TTL.
	Version int

	// TTL is how long cached entries for the resource stay fresh.
	TTL time.Duration
}

// Policies is the immutable per-resource version and TTL table, built
// once at startup and injected into the components that need it.
type Policies map[Resource]Policy

// DefaultPolicies returns the production version/TTL table.
//
//	team:         24h – rarely changes
//	teamDetails:  12h – stats change daily
//	teamPlayers:   6h – lineups transfer more often
//	player:       12h – bio mostly static
//	matches:       2m – live data
//	matchDetails:  1m – very dynamic
//	matchStats:    1m – very dynamic
func DefaultPolicies() Policies {
	return Policies{
		ResourceTeam:         {Version: 1, TTL: 24 * time.Hour},
		ResourceTeamDetails:  {Version: 1, TTL: 12 * time.Hour},
		ResourceTeamPlayers:  {Version: 1, TTL: 6 * time.Hour},
		ResourcePlayer:       {Version: 1, TTL: 12 * time.Hour},
		ResourceMatches:      {Version: 1, TTL: 2 * time.Minute},
		ResourceMatchDetails: {Version: 1, TTL: 1 * time.Minute},
		ResourceMatchStats:   {Version: 1, TTL: 1 * time.Minute},
	}
}

// Key builds the versioned cache key for a resource.
// Format: v{version}_{resource}_{part1}_{part2}_...
//
// Two calls with the same resource and parts always produce the same
// string. Unknown resources panic: the resource name must come from the
// registered constant set, so reaching this is a programming error.
func (p Policies) Key(resource Resource, parts ...any) string {
	policy, ok := p[resource]
	if !ok {
		panic(fmt.Sprintf("cache: unregistered resource %q", resource))
	}

	segments := make([]string, 0, len(parts)+2)
	segments = append(segments, fmt.Sprintf("v%d", policy.Version), string(resource))
	for _, part := range parts {
		segments = append(segments, fmt.Sprint(part))
	}

	return strings.Join(segments, keySeparator)
}

// TTL returns the configured TTL for a resource.
func (p Policies) TTL(resource Resource) time.Duration {
	policy, ok := p[resource]
	if !ok {
		panic(fmt.Sprintf("cache: unregistered resource %q", resource))
	}
	return policy.TTL
}
