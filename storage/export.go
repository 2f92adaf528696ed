package storage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/emersion/go-message/mail"
)

// WriteTo escreve a mensagem no formato RFC 5322, com corpo text/plain
func (m Message) WriteTo(w io.Writer) (int64, error) {
	var h mail.Header
	h.SetDate(m.createdAt)
	h.SetAddressList("From", []*mail.Address{{Address: m.sender}})
	h.SetAddressList("To", []*mail.Address{{Address: m.recipient}})
	h.SetSubject(m.subject)
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	h.Set("Content-Transfer-Encoding", "8bit")

	var buf bytes.Buffer
	bw, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return 0, fmt.Errorf("falha ao criar cabeçalho da mensagem: %w", err)
	}
	if _, err := io.WriteString(bw, m.body); err != nil {
		return 0, fmt.Errorf("falha ao escrever corpo da mensagem: %w", err)
	}
	if err := bw.Close(); err != nil {
		return 0, fmt.Errorf("falha ao finalizar mensagem: %w", err)
	}

	return buf.WriteTo(w)
}
