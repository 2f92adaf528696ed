package storage

import (
	"errors"
)

// ErrUserNotFound é retornado quando um usuário não é encontrado
var ErrUserNotFound = errors.New("usuário não encontrado")

// Sender é qualquer tipo capaz de enviar uma mensagem a um destinatário
type Sender interface {
	Send(message Message, recipient Receiver)
}

// Receiver é qualquer tipo capaz de receber uma mensagem
type Receiver interface {
	Receive(message Message)
}

// Lister é qualquer tipo capaz de listar as mensagens que contém
type Lister interface {
	List() []string
}

var (
	_ Sender   = (*User)(nil)
	_ Receiver = (*User)(nil)
	_ Lister   = (*Folder)(nil)
)
