package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mpags/internal/cipher"
)

type cipherInfo struct {
	Name    string `json:"name"`
	KeyRule string `json:"key_rule"`
}

func newCiphersCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "ciphers",
		Short: "List supported ciphers and their key rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := cipher.Types()
			infos := make([]cipherInfo, 0, len(types))
			for _, t := range types {
				infos = append(infos, cipherInfo{Name: t.String(), KeyRule: t.KeyRule()})
			}
			if jsonOutput {
				return writeJSON(cmd, infos)
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{info.Name, info.KeyRule})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Cipher", "Key"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}
