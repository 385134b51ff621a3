package common

import "context"

// Oracle is the optional external classifier used to rescue low-confidence
// tokens: those whose phonemes came from letter-fallback G2P, or whose
// rhyme tail came out empty. Both methods MUST honor ctx cancellation;
// a canceled or timed-out call is treated as OracleFailure by the caller
// (augmentation skipped, the non-augmented result returned).
type Oracle interface {
	// Classify asks the oracle to assign each of unknownWords to one of the
	// classes summarized in existingClasses, or to signal "new".
	Classify(ctx context.Context, unknownWords []string, existingClasses []ExistingClassesSummary) (map[string]OracleAssignment, error)

	// GuessPhonemes asks the oracle for a phoneme guess for a single word
	// that the pipeline otherwise couldn't transcribe with confidence.
	GuessPhonemes(ctx context.Context, word string) (PhonemeSequence, error)
}
