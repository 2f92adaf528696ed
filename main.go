package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gologme/log"
	"github.com/urfave/cli/v2"

	"github.com/carloslauriano/proyectoCorreo/config"
)

func newLogger(cfg *config.Config, w io.Writer) (*log.Logger, error) {
	tag := color.New(color.FgGreen)
	if !cfg.Log.Color {
		tag.DisableColor()
	}
	green := tag.SprintFunc()

	logger := log.New(w, fmt.Sprintf("[ %s ] ", green("Correo")), log.LstdFlags|log.Lmsgprefix)
	levels, err := cfg.Log.Levels()
	if err != nil {
		return nil, err
	}
	for _, level := range levels {
		logger.EnableLevel(level)
	}
	return logger, nil
}

func main() {
	app := cli.NewApp()
	app.Name = "correo"
	app.Usage = "simulação de email em memória"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "arquivo de configuração YAML",
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "modo de entrega: direct ou server",
		},
		&cli.BoolFlag{
			Name:  "export",
			Usage: "escreve a mensagem enviada no formato RFC 5322",
		},
	}
	app.Action = func(c *cli.Context) error {
		// Carregar configuração
		cfg, err := config.LoadConfig(c.String("config"))
		if err != nil {
			return cli.Exit(fmt.Sprintf("Erro ao carregar configuração: %v", err), 1)
		}
		if c.IsSet("mode") {
			cfg.Delivery.Mode = c.String("mode")
			if err := cfg.Validate(); err != nil {
				return cli.Exit(err.Error(), 1)
			}
		}

		logger, err := newLogger(cfg, os.Stderr)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		return runDemo(cfg, logger, os.Stdout, c.Bool("export"))
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
