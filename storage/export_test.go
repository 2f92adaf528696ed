package storage

import (
	"bytes"
	"io"
	"testing"

	"github.com/emersion/go-message/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageWriteTo(t *testing.T) {
	msg := NewMessage("federodriguez@mail.com", "franflores@mail.com", "¡Hola Fran!", "¿Todo bien?")

	var buf bytes.Buffer
	n, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	raw := buf.String()
	assert.Contains(t, raw, "Content-Transfer-Encoding: 8bit")
	assert.Contains(t, raw, "¿Todo bien?")
	assert.NotContains(t, raw, "=C2=BF")

	mr, err := mail.CreateReader(&buf)
	require.NoError(t, err)

	subject, err := mr.Header.Subject()
	require.NoError(t, err)
	assert.Equal(t, "¡Hola Fran!", subject)

	from, err := mr.Header.AddressList("From")
	require.NoError(t, err)
	require.Len(t, from, 1)
	assert.Equal(t, "federodriguez@mail.com", from[0].Address)

	to, err := mr.Header.AddressList("To")
	require.NoError(t, err)
	require.Len(t, to, 1)
	assert.Equal(t, "franflores@mail.com", to[0].Address)

	date, err := mr.Header.Date()
	require.NoError(t, err)
	assert.Equal(t, msg.CreatedAt().Unix(), date.Unix())

	part, err := mr.NextPart()
	require.NoError(t, err)
	body, err := io.ReadAll(part.Body)
	require.NoError(t, err)
	assert.Equal(t, "¿Todo bien?", string(body))
}
