package server

import (
	"fmt"
	"io"

	"github.com/gologme/log"

	"github.com/carloslauriano/proyectoCorreo/storage"
)

// Server mantém o registro dos usuários pelo endereço de email.
// Não é seguro para uso concorrente.
type Server struct {
	log   *log.Logger
	users []*storage.User
}

// NewServer cria um servidor vazio. Um logger nil descarta a saída.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Server{
		log: logger,
	}
}

// Register acrescenta o usuário ao registro. Endereços duplicados são aceitos.
func (s *Server) Register(user *storage.User) {
	if _, ok := s.Find(user.Address()); ok {
		s.log.Debugf("Endereço %s já registrado, mantendo o primeiro", user.Address())
	}
	s.users = append(s.users, user)
	s.log.Debugf("Usuário %s <%s> registrado", user.Name(), user.Address())
}

// Find retorna o primeiro usuário registrado com o endereço informado
func (s *Server) Find(address string) (*storage.User, bool) {
	for _, u := range s.users {
		if u.Address() == address {
			return u, true
		}
	}
	return nil, false
}

// Lookup é como Find, mas retorna storage.ErrUserNotFound quando não há usuário
func (s *Server) Lookup(address string) (*storage.User, error) {
	user, ok := s.Find(address)
	if !ok {
		return nil, fmt.Errorf("%s: %w", address, storage.ErrUserNotFound)
	}
	return user, nil
}

// Users retorna os usuários na ordem de registro
func (s *Server) Users() []*storage.User {
	users := make([]*storage.User, len(s.users))
	copy(users, s.users)
	return users
}
