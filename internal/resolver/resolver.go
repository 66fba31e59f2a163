package resolver

import (
	"strconv"
	"strings"

	"github.com/thenoetrevino/plazo/internal/models"
	"github.com/thenoetrevino/plazo/internal/types"
)

// Rule names the match rule that produced a resolution
type Rule int

const (
	RuleFallback Rule = iota
	RuleExactID
	RuleNumericID
	RulePrefixedID
	RuleExactName
	RulePartialName
	RuleIndex
	RuleEmptyQuery
)

func (r Rule) String() string {
	switch r {
	case RuleExactID:
		return "exact-id"
	case RuleNumericID:
		return "numeric-id"
	case RulePrefixedID:
		return "prefixed-id"
	case RuleExactName:
		return "exact-name"
	case RulePartialName:
		return "partial-name"
	case RuleIndex:
		return "index"
	case RuleEmptyQuery:
		return "empty-query"
	default:
		return "fallback"
	}
}

// Resolve returns the project identified by query. See Match for the rules.
func Resolve(projects []*models.Project, query any) *models.Project {
	p, _ := Match(projects, query)
	return p
}

// Match resolves query against projects and reports which rule matched.
//
// Rules, in order:
//  1. exact identifier match
//  2. numeric query as proj<query>
//  3. proj-prefixed query with a numeric remainder as proj<remainder>
//  4. case-insensitive exact name
//  5. case-insensitive partial name, in either direction
//  6. numeric query as a 1-based position in projects
//
// An absent or unmatched query yields projects[0]. An empty list yields nil.
func Match(projects []*models.Project, query any) (*models.Project, Rule) {
	if len(projects) == 0 {
		return nil, RuleFallback
	}

	q := queryString(query)
	if q == "" {
		return projects[0], RuleEmptyQuery
	}

	if p := findByID(projects, q); p != nil {
		return p, RuleExactID
	}

	numeric := types.IsNumeric(q)
	if numeric {
		if p := findByID(projects, types.CanonicalFromDigits(q).String()); p != nil {
			return p, RuleNumericID
		}
	}

	lower := strings.ToLower(q)
	if rest, ok := strings.CutPrefix(lower, types.CanonicalPrefix); ok && types.IsNumeric(rest) {
		if p := findByID(projects, types.CanonicalFromDigits(rest).String()); p != nil {
			return p, RulePrefixedID
		}
	}

	for _, p := range projects {
		if strings.ToLower(p.Name) == lower {
			return p, RuleExactName
		}
	}

	for _, p := range projects {
		name := strings.ToLower(p.Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, lower) || strings.Contains(lower, name) {
			return p, RulePartialName
		}
	}

	if numeric {
		if n, err := strconv.Atoi(q); err == nil && n >= 1 && n <= len(projects) {
			return projects[n-1], RuleIndex
		}
	}

	return projects[0], RuleFallback
}

func findByID(projects []*models.Project, id string) *models.Project {
	for _, p := range projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}
