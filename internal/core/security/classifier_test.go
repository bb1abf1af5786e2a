package security

import "testing"

func TestClassifier_ForbiddenCommands(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name    string
		command string
	}{
		{"recursive root delete", "rm -rf /"},
		{"recursive root delete reordered flags", "rm -fr /"},
		{"recursive root delete verbose flags", "rm -vrf /"},
		{"recursive root wildcard delete", "rm -rf /*"},
		{"recursive root wildcard delete reordered flags", "rm -fr /*"},
		{"windows quiet recursive delete", "del /q /s C:\\Users"},
		{"disk format", "format c:"},
		{"fdisk", "fdisk /dev/sda"},
		{"mkfs", "mkfs.ext4 /dev/sdb1"},
		{"dd raw write", "dd if=/dev/zero of=/dev/sda"},
		{"block device redirect", "cat payload.img > /dev/sda"},
		{"fork bomb", ":(){ :|:& };:"},
		{"shutdown", "shutdown -h now"},
		{"reboot", "reboot"},
		{"poweroff", "poweroff"},
		{"halt", "halt"},
		{"init 0", "init 0"},
		{"init 6", "init 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.command); got != Forbidden {
				t.Errorf("Classify(%q) = %v, want Forbidden", tt.command, got)
			}
		})
	}
}

func TestClassifier_ConfirmableCommands(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name    string
		command string
		rule    string
	}{
		{"recursive remove of directory", "rm -rf /tmp/testdir", "recursive-remove"},
		{"recursive remove reordered flags", "rm -fr /tmp/testdir", "recursive-remove"},
		{"recursive remove of system subtree", "rm -rf /etc/nginx", "recursive-remove"},
		{"plain remove", "rm report.txt", "remove"},
		{"windows delete", "del report.txt", "windows-delete"},
		{"windows recursive rmdir", "rmdir /s /q test_data", "windows-recursive-rmdir"},
		{"plain rmdir", "rmdir logs", "rmdir"},
		{"move", "mv a.txt b.txt", "move"},
		{"chmod 777", "chmod 777 script.sh", "world-writable-chmod"},
		{"recursive chown", "chown -r user /srv/data", "recursive-chown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Check(tt.command)
			if result.Verdict != Confirm {
				t.Fatalf("Check(%q).Verdict = %v, want Confirm", tt.command, result.Verdict)
			}
			if result.Rule != tt.rule {
				t.Errorf("Check(%q).Rule = %q, want %q", tt.command, result.Rule, tt.rule)
			}
			if result.Reason == "" {
				t.Errorf("Check(%q) has empty reason", tt.command)
			}
		})
	}
}

func TestClassifier_SafeCommands(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name    string
		command string
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
		{"list files", "ls -la"},
		{"working directory", "pwd"},
		{"processes", "ps aux"},
		{"echo", "echo hello world"},
		{"pipe of safe commands", "ls -1 | wc -l"},
		{"rmfoo is not rm", "rmfoo --version"},
		{"informative is not format", "echo informative"},
		{"mkdir is not mkfs", "mkdir myproject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.command); got != Safe {
				t.Errorf("Classify(%q) = %v, want Safe", tt.command, got)
			}
		})
	}
}

// A command matching both tiers must be forbidden: the forbidden tier is
// evaluated before the confirm tier regardless of where the patterns sit in
// the command text.
func TestClassifier_ForbiddenWinsOverConfirm(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name    string
		command string
	}{
		{"mv chained with rm -rf /", "mv /tmp/a /tmp/b && rm -rf /"},
		{"rm -rf / chained after safe command", "ls && rm -rf /"},
		{"confirmable rm piped into shutdown", "rm old.log; shutdown -h now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.command); got != Forbidden {
				t.Errorf("Classify(%q) = %v, want Forbidden", tt.command, got)
			}
		})
	}
}

func TestClassifier_CaseInsensitive(t *testing.T) {
	classifier := NewClassifier()

	pairs := [][2]string{
		{"RM -RF /", "rm -rf /"},
		{"Shutdown -h now", "shutdown -h now"},
		{"MV a b", "mv a b"},
	}

	for _, pair := range pairs {
		if got, want := classifier.Classify(pair[0]), classifier.Classify(pair[1]); got != want {
			t.Errorf("Classify(%q) = %v, but Classify(%q) = %v", pair[0], got, pair[1], want)
		}
	}
}

func TestClassifier_DangerousPatternInsidePipeline(t *testing.T) {
	classifier := NewClassifier()

	// A safe command piped into a dangerous one is matched on the whole
	// string, so the dangerous sub-pattern is still caught.
	if got := classifier.Classify("cat list.txt | rm -rf /"); got != Forbidden {
		t.Errorf("Classify() = %v, want Forbidden", got)
	}
	if got := classifier.Classify("find . -name '*.bak' | xargs rm -v old.bak"); got != Confirm {
		t.Errorf("Classify() = %v, want Confirm", got)
	}
}

func TestClassifier_Idempotent(t *testing.T) {
	classifier := NewClassifier()

	commands := []string{"", "ls", "rm -rf /tmp/x", "rm -rf /", "shutdown"}
	for _, cmd := range commands {
		first := classifier.Classify(cmd)
		second := classifier.Classify(cmd)
		if first != second {
			t.Errorf("Classify(%q) not stable: %v then %v", cmd, first, second)
		}
	}
}

func TestVerdict_String(t *testing.T) {
	tests := []struct {
		verdict Verdict
		want    string
	}{
		{Safe, "safe"},
		{Confirm, "confirm"},
		{Forbidden, "forbidden"},
		{Verdict(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.verdict.String(); got != tt.want {
			t.Errorf("Verdict(%d).String() = %q, want %q", tt.verdict, got, tt.want)
		}
	}
}
