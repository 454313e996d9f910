// Package envfile reads and edits the bot's .env settings file. Edits
// rewrite single lines in place so comments and ordering survive; the bot
// and its run scripts both read this file, nothing may reformat it.
package envfile

import (
	"fmt"
	"os"
	"strings"
)

// Load sets KEY=VALUE pairs from path into the process environment,
// skipping keys that are already set and lines that are blank or comments.
// A missing file is not an error.
func Load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("envfile: read %s: %w", path, err)
	}

	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("envfile: set %s: %w", key, err)
		}
	}
	return nil
}

// Set updates the KEY= line in place, appending the key when the file does
// not mention it yet. Every other byte of the file is preserved.
func Set(path, key, value string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("envfile: read %s: %w", path, err)
	}

	// splitting on \n leaves the \r of CRLF files on each line; it has to
	// come back on any line we rewrite
	crlf := strings.Contains(string(b), "\r\n")
	lines := strings.Split(string(b), "\n")
	updated := false
	for i, line := range lines {
		body := strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(body), key+"=") {
			lines[i] = fmt.Sprintf("%s=%s", key, value)
			if strings.HasSuffix(line, "\r") {
				lines[i] += "\r"
			}
			updated = true
			break
		}
	}
	if !updated {
		entry := fmt.Sprintf("%s=%s", key, value)
		if crlf {
			entry += "\r"
		}
		// append before a trailing final newline if there is one
		if n := len(lines); n > 0 && lines[n-1] == "" {
			lines[n-1] = entry
			lines = append(lines, "")
		} else {
			lines = append(lines, entry)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("envfile: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), info.Mode().Perm()); err != nil {
		return fmt.Errorf("envfile: write %s: %w", path, err)
	}
	return nil
}
