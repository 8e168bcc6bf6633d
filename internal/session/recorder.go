package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danielpatrickdp/ending-sim/internal/logging"
	"github.com/danielpatrickdp/ending-sim/internal/store"
)

// #region store-recorder
// StoreRecorder archives finished sessions and their decision trail.
type StoreRecorder struct {
	Store *store.Store
}

// Record implements Recorder.
func (r StoreRecorder) Record(ctx context.Context, rec Record) error {
	transcript, err := json.Marshal(rec.Transcript())
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}
	// the session row and its decision trail commit together
	return r.Store.InTx(ctx, func(tx *store.Tx) error {
		err := tx.SaveSession(ctx, store.SessionRecord{
			SessionID:      rec.ID,
			Mode:           rec.Mode.String(),
			Route:          rec.Route,
			Affinity:       rec.Affinity,
			EndingKind:     rec.Outcome.Kind.String(),
			EndingText:     rec.Outcome.Text,
			TranscriptJSON: string(transcript),
			CreatedAt:      rec.StartedAt,
		})
		if err != nil {
			return err
		}
		for _, st := range rec.Steps {
			err := logging.LogDecision(ctx, tx.Execer(), logging.DecisionEntry{
				SessionID: rec.ID,
				Step:      st.Name,
				Decision:  st.Decision,
				Reason:    st.Reason,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// #endregion store-recorder
