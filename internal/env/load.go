package env

import (
	"bufio"
	"os"
	"strings"
)

// Load reads KEY=VALUE lines from path (e.g. ".env") into the process environment so
// CUBEFIELD_* overrides can live next to the binary. Variables already set in the
// environment win over the file. Empty lines, lines starting with # and an optional
// leading "export " are handled. A missing file is not an error.
// Returns the keys that were set from the file.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var set []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return set, err
		}
		set = append(set, key)
	}
	return set, scanner.Err()
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	k, v, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(k)
	value = strings.TrimSpace(v)
	if key == "" {
		return "", "", false
	}
	// Remove surrounding quotes if present
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}
