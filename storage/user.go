package storage

// User representa um usuário do sistema de email. Cada usuário possui
// exatamente duas pastas: entrada e salida.
type User struct {
	name    string
	address string
	inbox   *Folder
	sent    *Folder
}

// NewUser cria um novo usuário com as pastas padrão vazias
func NewUser(name, address string) *User {
	return &User{
		name:    name,
		address: address,
		inbox:   NewFolder(InboxDisplayName),
		sent:    NewFolder(SentDisplayName),
	}
}

// Name retorna o nome do usuário
func (u *User) Name() string {
	return u.name
}

// Address retorna o endereço de email do usuário
func (u *User) Address() string {
	return u.address
}

// Inbox retorna a pasta de entrada
func (u *User) Inbox() *Folder {
	return u.inbox
}

// Sent retorna a pasta de enviados
func (u *User) Sent() *Folder {
	return u.sent
}

// Send guarda a mensagem em enviados e a entrega ao destinatário.
// Remetente e destinatário da mensagem não são conferidos.
func (u *User) Send(message Message, recipient Receiver) {
	u.sent.Add(message)
	recipient.Receive(message)
}

// Receive guarda a mensagem na pasta de entrada
func (u *User) Receive(message Message) {
	u.inbox.Add(message)
}

// FolderNames retorna as chaves das pastas do usuário
func (u *User) FolderNames() []string {
	return []string{FolderInbox, FolderSent}
}

// Folder obtém uma pasta pela chave
func (u *User) Folder(key string) (*Folder, bool) {
	switch key {
	case FolderInbox:
		return u.inbox, true
	case FolderSent:
		return u.sent, true
	default:
		return nil, false
	}
}

// List lista as mensagens de uma pasta. Para uma chave desconhecida
// retorna uma lista vazia.
func (u *User) List(key string) []string {
	folder, ok := u.Folder(key)
	if !ok {
		return []string{}
	}
	return folder.List()
}
