package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keymint/internal/domain"
)

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func x25519Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "x25519",
		Short: "Generate a REALITY X25519 key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := gen.X25519()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(kp)
			}
			fmt.Printf("PrivateKey: %s\nPublicKey: %s\n", kp.PrivateKey, kp.PublicKey)
			return nil
		},
	}
}

func shortIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortid",
		Short: "Generate a REALITY short ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := gen.ShortID()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(map[string]domain.ShortID{"shortId": id})
			}
			fmt.Println(id)
			return nil
		},
	}
}

func clientIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clientid",
		Short: "Generate a VLESS user UUID",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := gen.ClientID()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(map[string]domain.ClientID{"clientId": id})
			}
			fmt.Println(id)
			return nil
		},
	}
}

func mldsa65Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mldsa65",
		Short: "Generate an ML-DSA-65 seed and verify key",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := gen.MLDSA65()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(kp)
			}
			fmt.Printf("Seed: %s\nVerify: %s\n", kp.Seed, kp.Verify)
			return nil
		},
	}
}

func vlessencCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vlessenc",
		Short: "Generate VLESS encryption/decryption strings",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := gen.VLESSEncryption()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(b)
			}
			fmt.Println("X25519:")
			fmt.Printf("  decryption: %s\n  encryption: %s\n", b.X25519.Decryption, b.X25519.Encryption)
			fmt.Println("ML-KEM-768:")
			fmt.Printf("  decryption: %s\n  encryption: %s\n", b.MLKEM768.Decryption, b.MLKEM768.Encryption)
			return nil
		},
	}
}

func sspasswordCmd() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "sspassword",
		Short: "Generate a Shadowsocks password for a cipher method",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := gen.ShadowsocksPassword(domain.CipherMethod(method))
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(p)
			}
			fmt.Printf("Method: %s\nPassword: %s\n", p.Method, p.Value)
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", string(domain.Cipher2022AES128GCM),
		fmt.Sprintf("cipher method, one of %v", domain.CipherMethods()))
	return cmd
}
