package store

import "time"

// #region session-record
// SessionRecord is one archived session row.
type SessionRecord struct {
	SessionID      string    `db:"session_id"`
	Mode           string    `db:"mode"`
	Route          string    `db:"route"`
	Affinity       int       `db:"affinity"`
	EndingKind     string    `db:"ending_kind"`
	EndingText     string    `db:"ending_text"`
	TranscriptJSON string    `db:"transcript_json"`
	CreatedAt      time.Time `db:"-"`
}

// #endregion session-record

// #region kind-count
// KindCount is the number of archived sessions per ending kind.
type KindCount struct {
	EndingKind string `db:"ending_kind" json:"ending_kind"`
	Count      int    `db:"n" json:"count"`
}

// #endregion kind-count
