package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_Ordered(t *testing.T) {
	names, err := Files()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.sql", names[0])
	assert.IsNonDecreasing(t, names)
}

func TestInitSchema_Constraints(t *testing.T) {
	body, err := files.ReadFile("sql/0001_init.sql")
	require.NoError(t, err)
	schema := string(body)

	assert.Contains(t, schema, "CONSTRAINT tickets_flight_row_seat_key UNIQUE (flight_id, row_no, seat)")
	assert.Contains(t, schema, "order_id  BIGINT NOT NULL REFERENCES orders (id) ON DELETE CASCADE")
	assert.Contains(t, schema, "CONSTRAINT payments_session_id_key UNIQUE (session_id)")
	assert.Contains(t, schema, "CONSTRAINT routes_source_destination_key UNIQUE (source_id, destination_id)")

	payments := schema[strings.Index(schema, "CREATE TABLE payments"):]
	payments = payments[:strings.Index(payments, ");")]
	assert.NotContains(t, payments, "REFERENCES", "payments must not cascade from orders")
}
