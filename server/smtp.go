package server

import (
	"errors"
	"fmt"

	"github.com/emersion/go-smtp"

	"github.com/carloslauriano/proyectoCorreo/storage"
)

// Deliver envia a mensagem passando pelo registro: remetente e destinatário
// são procurados pelos endereços da própria mensagem. O efeito nas pastas é
// o mesmo de storage.User.Send.
func (s *Server) Deliver(message storage.Message) error {
	sender, err := s.Lookup(message.Sender())
	if err != nil {
		s.log.Warnf("Remetente rejeitado: %v", err)
		return &smtp.SMTPError{
			Code:         553,
			EnhancedCode: smtp.EnhancedCode{5, 1, 8},
			Message:      fmt.Sprintf("remetente desconhecido: %s", message.Sender()),
		}
	}

	recipient, err := s.Lookup(message.Recipient())
	if err != nil {
		s.log.Warnf("Destinatário rejeitado: %v", err)
		return &smtp.SMTPError{
			Code:         550,
			EnhancedCode: smtp.EnhancedCode{5, 1, 1},
			Message:      fmt.Sprintf("caixa de correio inexistente: %s", message.Recipient()),
		}
	}

	sender.Send(message, recipient)
	s.log.Infof("Mensagem entregue de %s para %s", sender.Address(), recipient.Address())
	return nil
}

// IsUnknownRecipient indica se err é a rejeição de Deliver para um
// destinatário não registrado
func IsUnknownRecipient(err error) bool {
	var smtpErr *smtp.SMTPError
	if !errors.As(err, &smtpErr) {
		return false
	}
	return smtpErr.Code == 550 && smtpErr.EnhancedCode == smtp.EnhancedCode{5, 1, 1}
}
