package launcher

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/plazo/internal/testutil"
)

func TestRun_QuitKey(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	err := Run(ctx, testutil.NewTestApp(t), "proj4",
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&out),
	)
	assert.NoError(t, err)
}
