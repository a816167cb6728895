package repository

import (
	"encoding/json"
	"fmt"
	"os"
)

// SeedEmployee is an employee directory entry as loaded at startup.
type SeedEmployee struct {
	ID                    int    `json:"id"`
	Name                  string `json:"name"`
	RemainingVacationDays int    `json:"remaining_vacation_days"`
}

// SeedManager is a manager directory entry as loaded at startup.
type SeedManager struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Seed holds the directory data the store is populated with.
type Seed struct {
	Employees []SeedEmployee `json:"employees"`
	Managers  []SeedManager  `json:"managers"`
}

// DefaultSeed returns the built-in directory data.
func DefaultSeed() Seed {
	return Seed{
		Employees: []SeedEmployee{
			{ID: 1, Name: "John Doe", RemainingVacationDays: 20},
			{ID: 2, Name: "Jane Smith", RemainingVacationDays: 20},
		},
		Managers: []SeedManager{
			{ID: 1, Name: "Manager 1"},
			{ID: 2, Name: "Manager 2"},
		},
	}
}

// LoadSeed reads seed data from a JSON file, falling back to DefaultSeed when
// path is empty.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}
