// Package session provides types for tracking play sessions and mission
// runs. The platform records a run whenever a mission ends; persistence is
// behind a small interface so sessions never depend on the storage package.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// SessionID uniquely identifies a player's session (e.g., SSH connection).
// Local play uses the fixed "local" session.
type SessionID string

// LocalSession is the session ID used by the local terminal client.
const LocalSession SessionID = "local"

// RunID uniquely identifies one mission attempt.
type RunID string

// NewRunID generates a random run identifier.
func NewRunID() RunID {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// Timestamp fallback keeps IDs unique enough for a local database.
		return RunID(fmt.Sprintf("run-%d", time.Now().UnixNano()))
	}
	return RunID("run-" + hex.EncodeToString(buf))
}

// MissionResultData contains one finished mission run for persistence.
type MissionResultData struct {
	RunID     string
	GameID    string
	MissionID string
	Session   string
	Outcome   string // "won" or "lost"
	Turns     int
	Score     int
}

// ResultSaver saves mission results. The platform holds one of these so it
// can record runs without depending on the storage package.
type ResultSaver interface {
	SaveResult(data MissionResultData) error
}
