package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses the program catalog from a JSON file.
// The catalog is loaded once per process and treated as immutable.
func Load(path string) ([]Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return Parse(data)
}

// Parse decodes a JSON array of programs and validates display identifiers.
func Parse(data []byte) ([]Program, error) {
	var programs []Program
	if err := json.Unmarshal(data, &programs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for i := range programs {
		if programs[i].DisplayName() == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
	}

	return programs, nil
}
