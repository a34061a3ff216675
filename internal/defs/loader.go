// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"bean-defense/internal/logger"
)

func init() {
	ResetLibraries()
}

// ResetLibraries restores the built-in tables.
func ResetLibraries() {
	TowerLibrary = defaultTowers()
	EnemyLibrary = defaultEnemies()
}

// LoadTowerDefinitions reads a tower configuration file and overrides the matching rows of TowerLibrary.
// Fields missing from a row keep their built-in values; the whole file is rejected on the first bad row.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(file, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	// поля строки ложатся поверх встроенного определения
	merged := make([]TowerDefinition, 0, len(rows))
	for _, raw := range rows {
		var key struct {
			Type TowerType `json:"type"`
		}
		if err := json.Unmarshal(raw, &key); err != nil {
			return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
		}
		if key.Type == TowerNone {
			return fmt.Errorf("tower definition: type NONE is not placeable")
		}
		def := TowerLibrary[key.Type]
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("tower definition %s: %w", key.Type, err)
		}
		if !def.Behavior.Placeable() {
			return fmt.Errorf("tower definition %s: unknown behavior %q", key.Type, def.Behavior)
		}
		merged = append(merged, def)
	}
	for _, def := range merged {
		TowerLibrary[def.Type] = def
	}

	logger.Infof("Loaded %d tower definitions", len(merged))
	return nil
}

// LoadEnemyDefinitions reads an enemy configuration file and overrides the matching rows of EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(file, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	merged := make([]EnemyDefinition, 0, len(rows))
	for _, raw := range rows {
		var key struct {
			Type EnemyType `json:"type"`
		}
		if err := json.Unmarshal(raw, &key); err != nil {
			return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
		}
		def := EnemyLibrary[key.Type]
		if err := json.Unmarshal(raw, &def); err != nil {
			return fmt.Errorf("enemy definition %s: %w", key.Type, err)
		}
		merged = append(merged, def)
	}
	for _, def := range merged {
		EnemyLibrary[def.Type] = def
	}

	logger.Infof("Loaded %d enemy definitions", len(merged))
	return nil
}
