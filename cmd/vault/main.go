// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command vault is the command-line caller of the Toolbox host. Every
// subcommand is a bridge call; nothing here touches the credential file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/toolbox-vault/internal/adapter"
	"github.com/MKhiriev/toolbox-vault/internal/config"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/spf13/cobra"
)

type clientFactory func(cfg config.Bridge, logger *logger.Logger) (adapter.BridgeClient, error)

type app struct {
	newClient clientFactory
	client    adapter.BridgeClient
	logger    *logger.Logger

	socket  string
	address string
	timeout time.Duration
	debug   bool
}

func main() {
	a := &app{newClient: adapter.NewBridgeClient}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "vault",
		Short:         "Manage Toolbox credentials through the running host",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect()
		},
	}

	root.PersistentFlags().StringVar(&a.socket, "socket", "", "host bridge unix socket (overrides TOOLBOX_BRIDGE_SOCKET)")
	root.PersistentFlags().StringVar(&a.address, "address", "", "host bridge loopback address host:port")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "bridge request timeout")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log bridge calls to stderr")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newRemoveCmd(a),
		newCopyCmd(a),
		newImportCmd(a),
		newExportCmd(a),
		newPathCmd(a),
		newOpenCmd(a),
		newInfoCmd(a),
		newPingCmd(a),
		newBrowseCmd(a),
	)

	return root
}

// connect builds the bridge client from the caller config and the global
// flags. Flags win over the environment and the config file.
func (a *app) connect() error {
	if a.client != nil {
		return nil
	}

	if a.debug {
		a.logger = logger.NewLogger("vault")
		a.logger.Logger = a.logger.Output(os.Stderr)
	} else {
		a.logger = logger.Nop()
	}

	cfg, err := config.GetCallerConfig()
	if err != nil {
		return err
	}

	switch {
	case a.socket != "":
		cfg.Bridge.SocketPath = a.socket
	case a.address != "":
		cfg.Bridge.SocketPath = ""
		cfg.Bridge.Address = a.address
	}
	if a.timeout > 0 {
		cfg.Bridge.RequestTimeout = a.timeout
	}

	client, err := a.newClient(cfg.Bridge, a.logger)
	if err != nil {
		return err
	}
	a.client = client
	return nil
}
