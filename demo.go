package main

import (
	"fmt"
	"io"

	"github.com/emersion/go-imap"
	"github.com/gologme/log"

	"github.com/carloslauriano/proyectoCorreo/config"
	"github.com/carloslauriano/proyectoCorreo/server"
	"github.com/carloslauriano/proyectoCorreo/storage"
)

// runDemo registra os usuários configurados, envia a mensagem configurada e
// escreve em out a pasta de enviados do remetente e a de entrada do destinatário
func runDemo(cfg *config.Config, logger *log.Logger, out io.Writer, export bool) error {
	srv := server.NewServer(logger)
	users := make([]*storage.User, 0, len(cfg.Users))
	for _, u := range cfg.Users {
		user := storage.NewUser(u.Name, u.Address)
		users = append(users, user)
		if !u.Unlisted {
			srv.Register(user)
		}
	}

	// O envio direto não consulta o servidor, então os usuários são
	// procurados entre os criados, registrados ou não
	sender, err := findUser(users, cfg.Message.From)
	if err != nil {
		return fmt.Errorf("remetente: %w", err)
	}
	recipient, err := findUser(users, cfg.Message.To)
	if err != nil {
		return fmt.Errorf("destinatário: %w", err)
	}

	msg := storage.NewMessage(cfg.Message.From, cfg.Message.To, cfg.Message.Subject, cfg.Message.Body)

	switch cfg.Delivery.Mode {
	case config.DeliveryServer:
		if err := srv.Deliver(msg); err != nil {
			return fmt.Errorf("falha ao entregar mensagem: %w", err)
		}
	default:
		sender.Send(msg, recipient)
	}

	fmt.Fprintf(out, "📨 Enviados de %s:\n", sender.Name())
	printListing(out, sender.List(storage.FolderSent))

	fmt.Fprintf(out, "\n📥 Entrada de %s:\n", recipient.Name())
	printListing(out, recipient.List(storage.FolderInbox))

	logFolders(logger, users)

	if export {
		fmt.Fprintln(out)
		if _, err := msg.WriteTo(out); err != nil {
			return fmt.Errorf("falha ao exportar mensagem: %w", err)
		}
	}

	return nil
}

func findUser(users []*storage.User, address string) (*storage.User, error) {
	for _, u := range users {
		if u.Address() == address {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", address, storage.ErrUserNotFound)
}

// logFolders registra o status de cada pasta e, em debug, os envelopes
func logFolders(logger *log.Logger, users []*storage.User) {
	items := []imap.StatusItem{imap.StatusMessages, imap.StatusUnseen}
	for _, u := range users {
		for _, info := range server.MailboxInfo(u) {
			folder, ok := u.Folder(info.Name)
			if !ok {
				continue
			}
			status := server.Status(folder, items)
			logger.Infof("%s/%s: %d mensagens", u.Address(), info.Name, status.Messages)
			for _, env := range server.Envelopes(folder) {
				logger.Debugf("%s%s%s: %q", u.Address(), info.Delimiter, info.Name, env.Subject)
			}
		}
	}
}

func printListing(out io.Writer, lines []string) {
	if len(lines) == 0 {
		fmt.Fprintln(out, "  (vazia)")
		return
	}
	for _, line := range lines {
		fmt.Fprintf(out, "  %s\n", line)
	}
}
