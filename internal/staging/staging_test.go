package staging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLogger() *logger.ZapLogger {
	return logger.NewZapLogger(zap.NewNop().Sugar())
}

func TestStage(t *testing.T) {
	staged, err := Stage(bytes.NewReader([]byte("%PDF-1.4 fake")), ".pdf", ".docx", testLogger())
	require.NoError(t, err)
	defer staged.Cleanup()

	assert.True(t, strings.HasSuffix(staged.InputPath, ".pdf"))
	assert.True(t, strings.HasSuffix(staged.OutputPath, ".docx"))

	base := strings.TrimSuffix(staged.InputPath, ".pdf")
	assert.Equal(t, base+".docx", staged.OutputPath, "output is a sibling by suffix substitution")

	data, err := os.ReadFile(staged.InputPath)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))

	_, err = os.Stat(staged.OutputPath)
	assert.True(t, os.IsNotExist(err), "output path is reserved, not created")
}

func TestStageUniquePaths(t *testing.T) {
	a, err := Stage(bytes.NewReader(nil), ".pdf", ".docx", testLogger())
	require.NoError(t, err)
	defer a.Cleanup()

	b, err := Stage(bytes.NewReader(nil), ".pdf", ".docx", testLogger())
	require.NoError(t, err)
	defer b.Cleanup()

	assert.NotEqual(t, a.InputPath, b.InputPath)
}

func TestCleanup(t *testing.T) {
	t.Run("removes input and output", func(t *testing.T) {
		staged, err := Stage(bytes.NewReader([]byte("in")), ".pdf", ".docx", testLogger())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(staged.OutputPath, []byte("out"), 0o644))

		staged.Cleanup()

		_, err = os.Stat(staged.InputPath)
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(staged.OutputPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing output is not an error", func(t *testing.T) {
		staged, err := Stage(bytes.NewReader([]byte("in")), ".docx", ".pdf", testLogger())
		require.NoError(t, err)

		staged.Cleanup()

		_, err = os.Stat(staged.InputPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("idempotent", func(t *testing.T) {
		staged, err := Stage(bytes.NewReader([]byte("in")), ".pdf", ".docx", testLogger())
		require.NoError(t, err)

		staged.Cleanup()
		staged.Cleanup()
	})
}
