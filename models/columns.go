package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSON-serialized column types for fields that have no natural SQL shape
// (procedure lists, tooth numbers, consumed materials, audit deltas).

func scanJSON(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	case nil:
		return nil
	default:
		return errors.New("unsupported column type for JSON scan")
	}
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

type IntList []int

func (l IntList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *IntList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// SessionMaterial records one batch consumption linked to a session.
type SessionMaterial struct {
	InventoryBatchID string `json:"inventoryBatchId"`
	Quantity         int    `json:"quantity"`
}

type MaterialList []SessionMaterial

func (l MaterialList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *MaterialList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// JSONMap is an opaque key-value payload (audit deltas).
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}
