package cli

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ericfisherdev/fishledger/internal/domain/model"
)

// seedLedger writes records into a fresh ledger file the way the producer
// does, without migration bookkeeping, and returns its path.
func seedLedger(t *testing.T, records ...model.Withdrawal) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fish_addon_db.db3")
	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer conn.Close()

	ctx := context.Background()
	_, err = conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS withdrawals (
		crane_id INTEGER NOT NULL,
		steam_id BIGINT NOT NULL,
		specific_withdrawn BLOB NOT NULL,
		received_at BIGINT NOT NULL
	)`)
	require.NoError(t, err)

	for _, w := range records {
		_, err := conn.ExecContext(ctx,
			`INSERT INTO withdrawals (crane_id, steam_id, specific_withdrawn, received_at) VALUES (?, ?, ?, ?)`,
			w.SourceID, w.ActorID, w.Payload, w.ReceivedAt,
		)
		require.NoError(t, err)
	}
	return path
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	isolateEnv(t)

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// isolateEnv clears FISHLEDGER_ variables for the duration of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FISHLEDGER_DB_PATH",
		"FISHLEDGER_PAYLOAD_FORMAT",
		"FISHLEDGER_LOG_LEVEL",
		"FISHLEDGER_METRICS_FILE",
	} {
		t.Setenv(key, "")
	}
}

// sampleVector has 3 Anchovie at index 0 and 5 Viperfish at index 41.
func sampleVector() model.QuantityVector {
	v := make(model.QuantityVector, model.SpeciesCount())
	v[0] = 3
	v[41] = 5
	return v
}
