package storage

// Folder representa uma pasta de mensagens. As mensagens só podem ser
// acrescentadas e mantêm a ordem de inserção.
type Folder struct {
	name     string
	messages []Message
}

// NewFolder cria uma pasta vazia
func NewFolder(name string) *Folder {
	return &Folder{
		name: name,
	}
}

// Name retorna o nome de exibição da pasta
func (f *Folder) Name() string {
	return f.name
}

// Add acrescenta uma mensagem ao final da pasta
func (f *Folder) Add(message Message) {
	f.messages = append(f.messages, message)
}

// Len retorna o número de mensagens na pasta
func (f *Folder) Len() int {
	return len(f.messages)
}

// Messages retorna uma cópia das mensagens da pasta
func (f *Folder) Messages() []Message {
	messages := make([]Message, len(f.messages))
	copy(messages, f.messages)
	return messages
}

// List retorna a representação de cada mensagem, na ordem de inserção
func (f *Folder) List() []string {
	result := make([]string, len(f.messages))
	for i, msg := range f.messages {
		result[i] = msg.String()
	}
	return result
}
