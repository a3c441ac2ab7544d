package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type Customer struct {
	ID        string `json:"id" msgpack:"id"`
	FirstName string `json:"first_name" msgpack:"first_name"`
	LastName  string `json:"last_name" msgpack:"last_name"`
	Email     string `json:"email" msgpack:"email"`
	Address   string `json:"address" msgpack:"address"`
	Active    bool   `json:"active" msgpack:"active"`
}

// UnmarshalJSON accepts both string and numeric identifiers and falls back to _id if id is missing
func (c *Customer) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        json.RawMessage `json:"id"`
		MongoID   json.RawMessage `json:"_id"`
		FirstName string          `json:"first_name"`
		LastName  string          `json:"last_name"`
		Email     string          `json:"email"`
		Address   string          `json:"address"`
		Active    bool            `json:"active"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	idRaw := raw.ID
	if isBlank(idRaw) {
		idRaw = raw.MongoID
	}

	id, err := identifier(idRaw)
	if err != nil {
		return err
	}

	*c = Customer{
		ID:        id,
		FirstName: raw.FirstName,
		LastName:  raw.LastName,
		Email:     raw.Email,
		Address:   raw.Address,
		Active:    raw.Active,
	}
	return nil
}

type NewCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Active    bool   `json:"active"`
}

func isBlank(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func identifier(raw json.RawMessage) (string, error) {
	if isBlank(raw) {
		return "", nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}

	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return n.String(), nil
}
