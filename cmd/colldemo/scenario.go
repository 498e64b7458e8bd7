package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a YAML-described sequence of list operations to replay.
type Scenario struct {
	// Name labels the run in the output header.
	Name string `yaml:"name"`

	// Ops are applied in order.
	Ops []Op `yaml:"ops"`
}

// Op is one list operation.
type Op struct {
	// Op selects the operation: add, addall, insert, set, remove, removeat,
	// removerange, update, reverse, sort, shuffle, clear.
	Op string `yaml:"op"`

	// Item is the operand for item-taking operations.
	Item string `yaml:"item,omitempty"`

	// Items is the operand list for addall.
	Items []string `yaml:"items,omitempty"`

	// Index is the operand for positional operations.
	Index int `yaml:"index,omitempty"`

	// Count is the operand for removerange.
	Count int `yaml:"count,omitempty"`
}

// loadScenario reads and decodes a scenario file.
func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &s, nil
}

// builtinScenario is replayed when no scenario file is given.
func builtinScenario() *Scenario {
	return &Scenario{
		Name: "builtin",
		Ops: []Op{
			{Op: "addall", Items: []string{"alpha", "beta", "gamma"}},
			{Op: "insert", Index: 1, Item: "delta"},
			{Op: "set", Index: 0, Item: "omega"},
			{Op: "remove", Item: "beta"},
			{Op: "reverse"},
			{Op: "removeat", Index: 0},
			{Op: "clear"},
		},
	}
}
