// Package pattern resolves natural-language requests to shell commands with
// ordered regular-expression rules over the platform command table. It is
// the zero-dependency fallback behind the LLM resolver.
package pattern

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/aryasadawrate19/AINux-Proto/internal/ai"
	"github.com/aryasadawrate19/AINux-Proto/internal/platform"
)

// group binds an intent key to the phrasings that express it. Groups are
// evaluated in order and the first matching pattern wins, so more specific
// groups (e.g. python files) must precede generic ones.
type group struct {
	intent   string
	patterns []*regexp.Regexp
}

// Resolver matches free text against the built-in pattern groups and looks
// the winning intent up in the platform command table.
type Resolver struct {
	platform platform.Platform
	table    *platform.Table
	groups   []group
}

// NewResolver creates a pattern resolver for the given platform.
func NewResolver(p platform.Platform, table *platform.Table) *Resolver {
	return &Resolver{
		platform: p,
		table:    table,
		groups:   defaultGroups(),
	}
}

// Name identifies the resolver in the REPL mode display.
func (r *Resolver) Name() string {
	return "regex patterns"
}

// Resolve implements ai.Resolver. Matching is case-insensitive over the
// trimmed input; intents the current platform has no mapping for are
// skipped, and ai.ErrNoCommand is returned when nothing matches.
func (r *Resolver) Resolve(ctx context.Context, input string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", ai.ErrNoCommand
	}

	for _, g := range r.groups {
		for _, re := range g.patterns {
			m := re.FindStringSubmatch(normalized)
			if m == nil {
				continue
			}
			command, ok := r.buildCommand(g.intent, m)
			if !ok {
				continue
			}
			return command, nil
		}
	}

	return "", ai.ErrNoCommand
}

// buildCommand turns a matched intent (plus any captured argument) into a
// concrete command for the resolver's platform.
func (r *Resolver) buildCommand(intent string, m []string) (string, bool) {
	arg := ""
	if len(m) > 1 {
		arg = m[1]
	}

	switch intent {
	case "change_directory", "create_directory":
		base, ok := r.table.Resolve(intent, r.platform)
		if !ok || arg == "" {
			return "", false
		}
		return base + " " + arg, true

	case "list_specific_files":
		if arg == "" {
			return "", false
		}
		if r.platform == platform.Windows {
			return "dir *." + arg, true
		}
		return "ls -la *." + arg, true

	case "show_specific_processes":
		if arg == "" {
			return "", false
		}
		if r.platform == platform.Windows {
			return fmt.Sprintf(`tasklist /fi "imagename eq %s*"`, arg), true
		}
		return "ps aux | grep " + arg, true

	default:
		return r.table.Resolve(intent, r.platform)
	}
}

// defaultGroups returns the built-in phrasing rules, most specific first.
func defaultGroups() []group {
	compile := func(patterns ...string) []*regexp.Regexp {
		res := make([]*regexp.Regexp, len(patterns))
		for i, p := range patterns {
			res[i] = regexp.MustCompile(p)
		}
		return res
	}

	return []group{
		{intent: "list_python_files", patterns: compile(
			`python.*files?`,
			`\.py.*files?`,
			`show.*python`,
			`list.*python`,
			`all.*\.py`,
		)},
		{intent: "list_files", patterns: compile(
			`list.*files?.*current.*director`,
			`show.*files?.*current.*director`,
			`list.*files?.*here`,
			`show.*files?.*here`,
			`list.*director.*content`,
			`what.*files?.*here`,
			`show.*all.*files?`,
			`display.*files?`,
			`contents?.*of.*this`,
			`^dir$`,
			`^ls$`,
		)},
		{intent: "list_specific_files", patterns: compile(
			`all.*\.(\w+).*files?`,
			`list.*\.(\w+).*files?`,
		)},
		{intent: "current_directory", patterns: compile(
			`show.*current.*director`,
			`what.*current.*director`,
			`where.*am.*i`,
			`current.*path`,
			`working.*director`,
			`current.*location`,
			`^pwd$`,
		)},
		{intent: "change_directory", patterns: compile(
			`change.*director.*to\s+(\S+)`,
			`go.*to.*director.*?\s(\S+)$`,
			`^cd\s+(\S+)`,
			`navigate.*to\s+(\S+)`,
			`switch.*to.*director.*?\s(\S+)$`,
		)},
		{intent: "create_directory", patterns: compile(
			`create.*director.*?\s(\S+)$`,
			`make.*director.*?\s(\S+)$`,
			`^mkdir\s+(\S+)`,
			`new.*folder.*?\s(\S+)$`,
			`create.*folder.*?\s(\S+)$`,
			`make.*folder.*?\s(\S+)$`,
		)},
		{intent: "show_specific_processes", patterns: compile(
			`process(?:es)?.*contain.*?\s(\w+)$`,
			`find.*process.*?\s(\w+)$`,
		)},
		{intent: "show_processes", patterns: compile(
			`show.*process`,
			`list.*process`,
			`running.*process`,
			`task.*list`,
			`what.*process.*running`,
			`active.*process`,
			`^ps$`,
		)},
		{intent: "network_connections", patterns: compile(
			`network.*connection`,
			`active.*connection`,
			`open.*connection`,
			`established.*connection`,
			`^netstat$`,
		)},
		{intent: "network_info", patterns: compile(
			`show.*network.*info`,
			`network.*config`,
			`ip.*config`,
			`network.*settings`,
			`network.*details`,
			`my.*ip`,
		)},
		{intent: "system_info", patterns: compile(
			`system.*info`,
			`computer.*info`,
			`machine.*info`,
			`system.*details`,
			`hardware.*info`,
		)},
		{intent: "disk_usage", patterns: compile(
			`disk.*usage`,
			`disk.*space`,
			`storage.*info`,
			`free.*space`,
			`available.*space`,
			`how.*much.*space`,
		)},
		{intent: "environment_vars", patterns: compile(
			`environment.*variable`,
			`env.*var`,
			`system.*variable`,
			`show.*env`,
		)},
		{intent: "logged_users", patterns: compile(
			`who.*logged.*in`,
			`logged.*user`,
			`active.*user`,
			`who.*online`,
		)},
		{intent: "large_files", patterns: compile(
			`large.*files?`,
			`big.*files?`,
			`huge.*files?`,
			`biggest.*files?`,
		)},
		{intent: "recent_files", patterns: compile(
			`recent.*files?`,
			`modified.*files?`,
			`latest.*files?`,
			`changed.*files?`,
		)},
		{intent: "file_count", patterns: compile(
			`how.*many.*files?`,
			`count.*files?`,
			`number.*of.*files?`,
		)},
		{intent: "memory_usage", patterns: compile(
			`memory.*usage`,
			`ram.*usage`,
			`memory.*info`,
			`free.*memory`,
			`available.*memory`,
		)},
	}
}
