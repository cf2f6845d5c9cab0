package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cesarrmg08/google-playwright-tests/domain/entities"
)

// queryFile is the on-disk shape of an extra query table
type queryFile struct {
	Queries []entities.Query `yaml:"queries"`
}

// LoadQueries returns the built-in query table, extended with the rows
// from the YAML file named by QueriesFile when one is configured.
func (s Settings) LoadQueries() ([]entities.Query, error) {
	queries := make([]entities.Query, len(entities.DefaultQueries))
	copy(queries, entities.DefaultQueries)

	if s.QueriesFile == "" {
		return queries, nil
	}

	data, err := os.ReadFile(s.QueriesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read queries file %s: %w", s.QueriesFile, err)
	}

	var file queryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse queries file %s: %w", s.QueriesFile, err)
	}

	for _, q := range file.Queries {
		if q.Text == "" {
			return nil, fmt.Errorf("queries file %s contains an entry with empty text", s.QueriesFile)
		}
		queries = append(queries, q)
	}

	return queries, nil
}
