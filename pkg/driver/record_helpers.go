package driver

import "github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

// Safe accessors for Neo4j record fields. Missing keys and nulls yield
// zero values rather than errors; the fixed dataset makes stricter
// handling unnecessary.

func recordString(record *db.Record, key string) string {
	value, found := record.Get(key)
	if !found || value == nil {
		return ""
	}
	s, _ := value.(string)
	return s
}

func recordInt64(record *db.Record, key string) int64 {
	value, found := record.Get(key)
	if !found || value == nil {
		return 0
	}
	i, _ := value.(int64)
	return i
}

func recordStringSlice(record *db.Record, key string) []string {
	value, found := record.Get(key)
	if !found || value == nil {
		return nil
	}
	raw, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func recordMap(record *db.Record, key string) map[string]any {
	value, found := record.Get(key)
	if !found || value == nil {
		return map[string]any{}
	}
	m, ok := value.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return m
}
