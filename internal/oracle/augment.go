// Package oracle wraps the optional common.Oracle collaborator: both of
// its methods are only ever called through here, so ctx cancellation and
// oracle errors always degrade to "augmentation skipped" rather than
// failing or partially mutating the overall Analyze call.
package oracle

import (
	"context"

	"github.com/rhymetrace/rhymecore/common"
)

// Augmentor wraps a common.Oracle so every call site gets the same
// fail-open behavior without repeating the ctx/error bookkeeping.
type Augmentor struct {
	oracle common.Oracle
}

func New(o common.Oracle) *Augmentor {
	if o == nil {
		return nil
	}
	return &Augmentor{oracle: o}
}

// Classify asks the oracle to place unknownWords into one of
// existingClasses or mark them new. ok is false on any error or canceled
// context, including when a is nil because no Oracle was configured.
func (a *Augmentor) Classify(ctx context.Context, unknownWords []string, existingClasses []common.ExistingClassesSummary) (map[string]common.OracleAssignment, bool) {
	if a == nil || a.oracle == nil || len(unknownWords) == 0 {
		return nil, false
	}
	if err := ctx.Err(); err != nil {
		return nil, false
	}

	assignments, err := a.oracle.Classify(ctx, unknownWords, existingClasses)
	if err != nil {
		return nil, false
	}
	return assignments, true
}

// GuessPhonemes asks the oracle for a pronunciation of word. ok is false on
// any error, canceled context, or absent Oracle.
func (a *Augmentor) GuessPhonemes(ctx context.Context, word string) (common.PhonemeSequence, bool) {
	if a == nil || a.oracle == nil {
		return common.PhonemeSequence{}, false
	}
	if err := ctx.Err(); err != nil {
		return common.PhonemeSequence{}, false
	}

	seq, err := a.oracle.GuessPhonemes(ctx, word)
	if err != nil {
		return common.PhonemeSequence{}, false
	}
	return seq, true
}
