package security

import "strings"

// Verdict is the three-way safety classification of a candidate command.
type Verdict int

const (
	// Safe commands run without any interaction.
	Safe Verdict = iota

	// Confirm commands are destructive but user-intended; they run only
	// after explicit confirmation.
	Confirm

	// Forbidden commands are never executed.
	Forbidden
)

// String returns the string representation of a Verdict.
func (v Verdict) String() string {
	switch v {
	case Safe:
		return "safe"
	case Confirm:
		return "confirm"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// CheckResult holds the outcome of a classification, including which rule
// matched and why.
type CheckResult struct {
	Verdict Verdict
	Rule    string
	Reason  string
}

// Classifier classifies candidate commands against two ordered rule tiers.
// The forbidden tier is always evaluated before the confirm tier, so a
// command matching both (e.g. a pipeline containing both "mv" and
// "rm -rf /") is forbidden, never merely confirmable.
//
// Matching is substring/regex based on the literal command text, not on
// parsed shell semantics. Quoting, chaining, or command substitution can
// therefore evade detection; the classifier is a guard rail for generated
// commands, not a sandbox.
type Classifier struct {
	forbidden   []rule
	confirmable []rule
}

// NewClassifier returns a Classifier loaded with the built-in rule tiers.
func NewClassifier() *Classifier {
	return &Classifier{
		forbidden:   forbiddenRules(),
		confirmable: confirmableRules(),
	}
}

// Classify returns the Verdict for a command. It is a pure function: the
// same input always yields the same Verdict.
func (c *Classifier) Classify(command string) Verdict {
	return c.Check(command).Verdict
}

// Check classifies a command and reports the matching rule. The command is
// trimmed and lowercased for matching only; the string actually executed is
// never altered. An empty command is Safe (executing it is the executor's
// concern).
func (c *Classifier) Check(command string) CheckResult {
	normalized := strings.ToLower(strings.TrimSpace(command))
	if normalized == "" {
		return CheckResult{Verdict: Safe}
	}

	for _, r := range c.forbidden {
		if r.re.MatchString(normalized) {
			return CheckResult{Verdict: Forbidden, Rule: r.name, Reason: r.reason}
		}
	}

	for _, r := range c.confirmable {
		if r.re.MatchString(normalized) {
			return CheckResult{Verdict: Confirm, Rule: r.name, Reason: r.reason}
		}
	}

	return CheckResult{Verdict: Safe}
}
