package storage

import (
	"fmt"
	"time"
)

// Chaves das pastas de cada usuário
const (
	FolderInbox = "entrada"
	FolderSent  = "salida"
)

// Nomes de exibição das pastas padrão
const (
	InboxDisplayName = "Bandeja de Entrada"
	SentDisplayName  = "Enviados"
)

const dateLayout = "2006-01-02 15:04"

// Message representa uma mensagem de email. É imutável após a criação.
type Message struct {
	sender    string
	recipient string
	subject   string
	body      string
	createdAt time.Time
}

// NewMessage cria uma nova mensagem com a data atual
func NewMessage(sender, recipient, subject, body string) Message {
	return Message{
		sender:    sender,
		recipient: recipient,
		subject:   subject,
		body:      body,
		createdAt: time.Now(),
	}
}

// Sender retorna o endereço do remetente
func (m Message) Sender() string { return m.sender }

// Recipient retorna o endereço do destinatário
func (m Message) Recipient() string { return m.recipient }

func (m Message) Subject() string { return m.subject }

func (m Message) Body() string { return m.body }

// CreatedAt retorna o instante em que a mensagem foi criada
func (m Message) CreatedAt() time.Time { return m.createdAt }

// String formata a mensagem para listagem
func (m Message) String() string {
	return fmt.Sprintf("%s | %s → %s: %s", m.createdAt.Format(dateLayout), m.sender, m.recipient, m.subject)
}
