package commands

import (
	"github.com/spf13/cobra"

	"keymint/internal/domain"
	"keymint/internal/httpapi"
	"keymint/internal/keygen"
)

var (
	serverURL string
	asJSON    bool

	gen domain.KeyMaterialGenerator
)

func Execute() error {
	root := &cobra.Command{
		Use:   "keymint",
		Short: "Generate proxy credential material",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if serverURL != "" {
				gen = httpapi.NewClient(serverURL)
				return
			}
			gen = keygen.New()
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "", "generate via a running keymintd (e.g. http://127.0.0.1:8787)")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		x25519Cmd(),
		shortIDCmd(),
		clientIDCmd(),
		mldsa65Cmd(),
		vlessencCmd(),
		sspasswordCmd(),
		exportCmd(),
	)
	return root.Execute()
}
