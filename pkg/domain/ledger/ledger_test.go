package ledger_test

import (
	"strings"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ledger.ParseKind("c")
	require.NoError(t, err)
	assert.Equal(t, ledger.KindCredit, k)

	k, err = ledger.ParseKind("d")
	require.NoError(t, err)
	assert.Equal(t, ledger.KindDebit, k)

	for _, s := range []string{"", "x", "credit", "C", "D"} {
		_, err := ledger.ParseKind(s)
		assert.ErrorIs(t, err, ledger.ErrInvalidKind, "kind %q", s)
	}
}

func TestKindDelta(t *testing.T) {
	assert.Equal(t, int64(100), ledger.KindCredit.Delta(100))
	assert.Equal(t, int64(-100), ledger.KindDebit.Delta(100))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ledger.ValidateAmount(1))
	assert.ErrorIs(t, ledger.ValidateAmount(0), ledger.ErrInvalidAmount)
	assert.ErrorIs(t, ledger.ValidateAmount(-5), ledger.ErrInvalidAmount)
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ledger.ValidateDescription("x"))
	assert.NoError(t, ledger.ValidateDescription(strings.Repeat("x", 10)))
	assert.ErrorIs(t, ledger.ValidateDescription(""), ledger.ErrInvalidDescription)
	assert.ErrorIs(t, ledger.ValidateDescription(strings.Repeat("x", 11)), ledger.ErrInvalidDescription)
}
