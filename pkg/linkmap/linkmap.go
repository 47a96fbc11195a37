// Package linkmap routes source entries to destination links using ordered
// regular expression rules.
package linkmap

import (
	"path/filepath"
	"regexp"

	"github.com/raatiniemi/linker/pkg/config"
	"github.com/raatiniemi/linker/pkg/errors"
	"github.com/raatiniemi/linker/pkg/node"
)

// Rule links entries whose basename matches Pattern into the Target directory.
type Rule struct {
	Pattern *regexp.Regexp
	Target  string
}

// Router evaluates rules in configured order.
type Router struct {
	rules []Rule
}

// New creates a Router from compiled rules.
func New(rules []Rule) *Router {
	return &Router{rules: rules}
}

// Compile builds a Router from configured link maps.
func Compile(maps []config.LinkMap) (*Router, error) {
	rules := make([]Rule, 0, len(maps))
	for _, m := range maps {
		pattern, err := regexp.Compile(m.Regex)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrRegexInvalid, "unable to build regex: %q", m.Regex).
				WithDetail("regex", m.Regex)
		}
		rules = append(rules, Rule{Pattern: pattern, Target: m.Target})
	}
	return New(rules), nil
}

// Route returns the link a Leaf or Branch should be materialized as. The
// basename is matched against every rule as an unanchored search; when
// several rules match, the last one wins. Links are never routed.
func (r *Router) Route(n node.Node) (node.Link, bool) {
	switch n.(type) {
	case node.Leaf, node.Branch:
	default:
		return node.Link{}, false
	}

	path := node.PathOf(n)
	if path == "" {
		return node.Link{}, false
	}
	basename := node.LastSegment(path)

	var match *Rule
	for i := range r.rules {
		if r.rules[i].Pattern.MatchString(basename) {
			match = &r.rules[i]
		}
	}
	if match == nil {
		return node.Link{}, false
	}

	return node.Link{
		Path:   filepath.Join(match.Target, basename),
		Source: path,
	}, true
}
