package oracle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rhymetrace/rhymecore/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOracle struct {
	classifyResult map[string]common.OracleAssignment
	classifyErr    error
	guessResult    common.PhonemeSequence
	guessErr       error
}

func (f *fakeOracle) Classify(ctx context.Context, words []string, existing []common.ExistingClassesSummary) (map[string]common.OracleAssignment, error) {
	return f.classifyResult, f.classifyErr
}

func (f *fakeOracle) GuessPhonemes(ctx context.Context, word string) (common.PhonemeSequence, error) {
	return f.guessResult, f.guessErr
}

func TestAugmentor_NilOracleAlwaysDegrades(t *testing.T) {
	a := New(nil)
	_, ok := a.Classify(context.Background(), []string{"skrrt"}, nil)
	assert.False(t, ok)

	_, ok = a.GuessPhonemes(context.Background(), "skrrt")
	assert.False(t, ok)
}

func TestAugmentor_ClassifySuccess(t *testing.T) {
	want := map[string]common.OracleAssignment{"skrrt": {ExistingClassID: 7}}
	a := New(&fakeOracle{classifyResult: want})

	got, ok := a.Classify(context.Background(), []string{"skrrt"}, nil)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestAugmentor_ClassifyErrorDegrades(t *testing.T) {
	a := New(&fakeOracle{classifyErr: errors.New("boom")})
	_, ok := a.Classify(context.Background(), []string{"skrrt"}, nil)
	assert.False(t, ok)
}

func TestAugmentor_CanceledContextDegrades(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := New(&fakeOracle{classifyResult: map[string]common.OracleAssignment{"x": {}}})
	_, ok := a.Classify(ctx, []string{"x"}, nil)
	assert.False(t, ok)
}

func TestAugmentor_DeadlineExceededDegrades(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	a := New(&fakeOracle{guessResult: common.PhonemeSequence{}})
	_, ok := a.GuessPhonemes(ctx, "skrrt")
	assert.False(t, ok)
}

func TestAugmentor_EmptyWordListShortCircuits(t *testing.T) {
	a := New(&fakeOracle{classifyResult: map[string]common.OracleAssignment{}})
	_, ok := a.Classify(context.Background(), nil, nil)
	assert.False(t, ok)
}
