package server

import (
	"strings"

	"github.com/emersion/go-imap"

	"github.com/carloslauriano/proyectoCorreo/storage"
)

// Envelope converte a mensagem para o envelope IMAP
func Envelope(msg storage.Message) *imap.Envelope {
	return &imap.Envelope{
		Date:    msg.CreatedAt(),
		Subject: msg.Subject(),
		From:    []*imap.Address{imapAddress(msg.Sender())},
		To:      []*imap.Address{imapAddress(msg.Recipient())},
	}
}

// Envelopes retorna os envelopes das mensagens da pasta, na ordem da pasta
func Envelopes(folder *storage.Folder) []*imap.Envelope {
	messages := folder.Messages()
	result := make([]*imap.Envelope, len(messages))
	for i, msg := range messages {
		result[i] = Envelope(msg)
	}
	return result
}

func imapAddress(addr string) *imap.Address {
	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return &imap.Address{MailboxName: addr}
	}
	return &imap.Address{
		MailboxName: addr[:at],
		HostName:    addr[at+1:],
	}
}

// Status retorna o status da pasta. Não há flags, então toda mensagem
// conta como não lida.
func Status(folder *storage.Folder, items []imap.StatusItem) *imap.MailboxStatus {
	status := imap.NewMailboxStatus(folder.Name(), items)
	count := uint32(folder.Len())

	for _, item := range items {
		switch item {
		case imap.StatusMessages:
			status.Messages = count
		case imap.StatusRecent:
			status.Recent = 0
		case imap.StatusUnseen:
			status.Unseen = count
		case imap.StatusUidNext:
			status.UidNext = count + 1
		case imap.StatusUidValidity:
			status.UidValidity = 1
		}
	}

	return status
}

// MailboxInfo lista as pastas do usuário, usando as chaves como nome
func MailboxInfo(user *storage.User) []*imap.MailboxInfo {
	names := user.FolderNames()
	result := make([]*imap.MailboxInfo, len(names))
	for i, name := range names {
		result[i] = &imap.MailboxInfo{
			Attributes: []string{},
			Delimiter:  "/",
			Name:       name,
		}
	}
	return result
}
