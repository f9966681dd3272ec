package services

import (
	"hearth/internal/changeset"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// fundDelta is a signed change to one fund's balance.
type fundDelta struct {
	fundID string
	cents  int64
}

// moveDeltas returns the balance changes for a row that contributed oldCents to
// oldFund and now contributes newCents to newFund. A reassignment reverses the old
// contribution and applies the new one; otherwise the same fund moves by the
// difference. Either fund may be "" for no fund. Zero deltas are dropped.
func moveDeltas(oldFund string, oldCents int64, newFund string, newCents int64) []fundDelta {
	var out []fundDelta
	add := func(fundID string, cents int64) {
		if fundID != "" && cents != 0 {
			out = append(out, fundDelta{fundID: fundID, cents: cents})
		}
	}
	if oldFund != newFund {
		add(oldFund, -oldCents)
		add(newFund, newCents)
		return out
	}
	add(newFund, newCents-oldCents)
	return out
}

// applyFundDeltas re-reads each fund inside the transaction and writes its new
// balance. The fund rows join the unit of work's change set.
func (u *unitOfWork) applyFundDeltas(householdID string, deltas []fundDelta) error {
	for _, d := range deltas {
		fund, err := mustFind[models.Fund](u.tx, householdID, d.fundID, apperrors.ErrFundNotFound)
		if err != nil {
			return err
		}
		before := *fund
		after := *fund
		after.BalanceCents += d.cents

		var diff changeset.Diff
		changeset.Compare(&diff, "balance_cents", before.BalanceCents, after.BalanceCents)
		if err := u.update(&before, &after, &diff); err != nil {
			return err
		}
	}
	return nil
}
