package platform

// Table maps intent keys to base commands, one mapping set per platform.
// It is built once and never mutated afterwards.
type Table struct {
	mappings map[Platform]map[string]string
}

// Resolve looks up the base command for an intent on the given platform.
// A missing intent or an unmapped platform yields ok=false, which callers
// must treat as "intent not understood" rather than an error.
func (t *Table) Resolve(intent string, p Platform) (string, bool) {
	commands, ok := t.mappings[p]
	if !ok {
		return "", false
	}
	cmd, ok := commands[intent]
	return cmd, ok
}

// Intents returns the intent keys mapped for the given platform.
func (t *Table) Intents(p Platform) []string {
	commands, ok := t.mappings[p]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(commands))
	for k := range commands {
		keys = append(keys, k)
	}
	return keys
}

// DefaultTable returns the built-in command mappings for Windows, Linux and
// macOS. Unknown platforms have no mappings at all.
func DefaultTable() *Table {
	unix := map[string]string{
		"list_files":          "ls -la",
		"list_python_files":   "ls -la *.py",
		"current_directory":   "pwd",
		"change_directory":    "cd",
		"create_directory":    "mkdir",
		"remove_file":         "rm",
		"copy_file":           "cp",
		"move_file":           "mv",
		"show_processes":      "ps aux",
		"network_info":        "ifconfig",
		"network_connections": "netstat -tuln",
		"system_info":         "uname -a",
		"disk_usage":          "df -h",
		"environment_vars":    "env",
		"logged_users":        "who",
		"large_files":         "find . -size +100M -ls",
		"recent_files":        "find . -mtime -1 -ls",
		"file_count":          "ls -1 | wc -l",
	}

	linux := make(map[string]string, len(unix)+1)
	darwin := make(map[string]string, len(unix)+1)
	for k, v := range unix {
		linux[k] = v
		darwin[k] = v
	}
	linux["memory_usage"] = "free -h"
	darwin["memory_usage"] = "vm_stat"

	return &Table{
		mappings: map[Platform]map[string]string{
			Linux:  linux,
			Darwin: darwin,
			Windows: {
				"list_files":          "dir",
				"list_python_files":   "dir *.py",
				"current_directory":   "cd",
				"change_directory":    "cd",
				"create_directory":    "mkdir",
				"remove_file":         "del",
				"copy_file":           "copy",
				"move_file":           "move",
				"show_processes":      "tasklist",
				"network_info":        "ipconfig",
				"network_connections": "netstat -an",
				"system_info":         "systeminfo",
				"disk_usage":          "dir /-c",
				"environment_vars":    "set",
				"logged_users":        "query user",
				"large_files":         "dir /s /o-s",
				"recent_files":        `forfiles /m *.* /c "cmd /c echo @path @fdate"`,
				"file_count":          `dir /b | find /c /v ""`,
				"memory_usage":        `systeminfo | findstr "Available Physical Memory"`,
			},
		},
	}
}
