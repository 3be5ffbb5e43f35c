package model

import (
	"slices"
	"strings"
)

// Settings is a singleton holding accumulated autocomplete history. The
// saved slices behave as sets; kept sorted so repeated saves are stable.
type Settings struct {
	Key              string   `json:"key"`
	SavedNames       []string `json:"saved_names,omitempty"`
	SavedLocations   []string `json:"saved_locations,omitempty"`
	SavedPrefixes    []string `json:"saved_prefixes,omitempty"`
	LastUsedPrefix   string   `json:"last_used_prefix,omitempty"`
	LastUsedSequence int      `json:"last_used_sequence,omitempty"`
}

// SetKey sets the database key for this settings record.
func (s *Settings) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for this settings record.
func (s *Settings) GetKey() string {
	return s.Key
}

// NewSettings creates the settings singleton.
func NewSettings() *Settings {
	return &Settings{Key: KeySettings}
}

// addUnique inserts value into set if it is non-empty and not already
// present, keeping the slice sorted.
func addUnique(set []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return set
	}
	i, found := slices.BinarySearch(set, value)
	if found {
		return set
	}
	return slices.Insert(set, i, value)
}

// AddName records a previously unseen asset name.
func (s *Settings) AddName(name string) {
	s.SavedNames = addUnique(s.SavedNames, name)
}

// AddLocation records a previously unseen location.
func (s *Settings) AddLocation(location string) {
	s.SavedLocations = addUnique(s.SavedLocations, location)
}

// AddPrefix records a previously unseen asset-code prefix.
func (s *Settings) AddPrefix(prefix string) {
	s.SavedPrefixes = addUnique(s.SavedPrefixes, prefix)
}
