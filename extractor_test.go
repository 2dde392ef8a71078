package orgscout_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/orgscout"
	"github.com/fwojciec/orgscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mainText(text string, err error) *mock.MainTextExtractor {
	return &mock.MainTextExtractor{
		MainTextFn: func(string) (string, error) { return text, err },
	}
}

func TestMainTextChain(t *testing.T) {
	t.Parallel()

	t.Run("returns first non-empty text", func(t *testing.T) {
		t.Parallel()

		chain := orgscout.MainTextChain{mainText("  ", nil), mainText("Chess Club meets weekly.", nil), mainText("unused", nil)}

		text, err := chain.MainText("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Chess Club meets weekly.", text)
	})

	t.Run("skips failing extractors", func(t *testing.T) {
		t.Parallel()

		chain := orgscout.MainTextChain{mainText("", errors.New("no content")), mainText("Choir", nil)}

		text, err := chain.MainText("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Choir", text)
	})

	t.Run("returns first error when all fail", func(t *testing.T) {
		t.Parallel()

		first := errors.New("first")
		chain := orgscout.MainTextChain{mainText("", first), mainText("", errors.New("second"))}

		_, err := chain.MainText("<html></html>")

		assert.Equal(t, first, err)
	})

	t.Run("empty text without errors", func(t *testing.T) {
		t.Parallel()

		text, err := orgscout.MainTextChain{mainText("", nil)}.MainText("<html></html>")

		require.NoError(t, err)
		assert.Empty(t, text)
	})
}
