package security

import "regexp"

// rule is a single classification pattern. Rules are evaluated in order and
// the first match within a tier wins.
type rule struct {
	name   string
	re     *regexp.Regexp
	reason string
}

// forbiddenRules returns the patterns that block a command outright.
// Patterns are matched against the trimmed, lowercased command string.
func forbiddenRules() []rule {
	return []rule{
		{
			// The target must be the bare root (or root wildcard): deleting
			// a subtree like /tmp/testdir is confirmable, not forbidden.
			// The flag cluster may carry r and f in either order (-rf, -fr,
			// -vrf); separately spelled flags (-r -f) still slip through to
			// the confirm tier.
			name:   "recursive-root-delete",
			re:     regexp.MustCompile(`rm\s+-(?:[a-z]*r[a-z]*f[a-z]*|[a-z]*f[a-z]*r[a-z]*)\s+/\*?([\s;&|]|$)`),
			reason: "recursive deletion of the filesystem root",
		},
		{
			name:   "windows-recursive-delete",
			re:     regexp.MustCompile(`del\s+/q\s+/s`),
			reason: "quiet recursive deletion on Windows",
		},
		{
			name:   "disk-format",
			re:     regexp.MustCompile(`\bformat(\s|$)`),
			reason: "disk formatting",
		},
		{
			name:   "disk-partition",
			re:     regexp.MustCompile(`\bfdisk\b`),
			reason: "disk partitioning",
		},
		{
			name:   "filesystem-create",
			re:     regexp.MustCompile(`\bmkfs`),
			reason: "filesystem creation",
		},
		{
			name:   "raw-disk-write",
			re:     regexp.MustCompile(`\bdd\s+if=`),
			reason: "raw block-device write via dd",
		},
		{
			name:   "block-device-redirect",
			re:     regexp.MustCompile(`>\s*/dev/(sd|nvme|hd)`),
			reason: "redirecting output onto a block device",
		},
		{
			name:   "fork-bomb",
			re:     regexp.MustCompile(`:\(\)\s*\{.*\}\s*;\s*:`),
			reason: "shell fork bomb",
		},
		{
			name:   "power-state",
			re:     regexp.MustCompile(`\b(shutdown|reboot|halt|poweroff)(\s|$)`),
			reason: "system power-state change",
		},
		{
			name:   "init-runlevel",
			re:     regexp.MustCompile(`\binit\s+[06]\b`),
			reason: "runlevel switch to halt or reboot",
		},
	}
}

// confirmableRules returns the patterns for destructive but user-intended
// commands. These run only after explicit confirmation. The recursive
// variants come first so the reported rule name is as specific as possible.
func confirmableRules() []rule {
	return []rule{
		{
			name:   "recursive-remove",
			re:     regexp.MustCompile(`\brm\s+-[a-z]*r[a-z]*\s+\S`),
			reason: "recursive file or directory removal",
		},
		{
			name:   "remove",
			re:     regexp.MustCompile(`\brm\s+\S`),
			reason: "file removal",
		},
		{
			name:   "windows-delete",
			re:     regexp.MustCompile(`\bdel\s+\S`),
			reason: "file deletion on Windows",
		},
		{
			name:   "windows-recursive-rmdir",
			re:     regexp.MustCompile(`\brmdir\s+/s\s+/q\s+\S`),
			reason: "recursive directory removal on Windows",
		},
		{
			name:   "rmdir",
			re:     regexp.MustCompile(`\brmdir\s+\S`),
			reason: "directory removal",
		},
		{
			name:   "move",
			re:     regexp.MustCompile(`\bmv\s+\S`),
			reason: "file or directory move",
		},
		{
			name:   "world-writable-chmod",
			re:     regexp.MustCompile(`\bchmod\s+7[0-7][0-7]\b`),
			reason: "world-accessible permission change",
		},
		{
			name:   "recursive-chown",
			re:     regexp.MustCompile(`\bchown\s+-r\s+\S`),
			reason: "recursive ownership change",
		},
	}
}
