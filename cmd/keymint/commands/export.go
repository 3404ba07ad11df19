package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keymint/internal/domain"
	"keymint/internal/services/material"
	"keymint/internal/store"
)

// export generates one credential of every kind and seals the set to a
// passphrase-protected file for hand-off to a server operator.
func exportCmd() *cobra.Command {
	var (
		out        string
		passphrase string
		method     string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a full credential set and seal it to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			svc := material.New(gen, nil)
			if _, err := svc.GenerateKeyPair(); err != nil {
				return err
			}
			if _, err := svc.GenerateShortID(); err != nil {
				return err
			}
			if _, err := svc.GenerateClientID(); err != nil {
				return err
			}
			if _, err := svc.GenerateMLDSA65(); err != nil {
				return err
			}
			if _, err := svc.GenerateVLESSEncryption(); err != nil {
				return err
			}
			if _, err := svc.GenerateShadowsocksPassword(domain.CipherMethod(method)); err != nil {
				return err
			}

			if err := store.Export(out, passphrase, svc.Snapshot()); err != nil {
				return err
			}
			fmt.Printf("Credential set sealed to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "keymint-credentials.enc", "output file")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the export")
	cmd.Flags().StringVar(&method, "method", string(domain.Cipher2022AES128GCM), "Shadowsocks cipher method")
	return cmd
}
