package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var outDir string

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Download reports",
	}
	reportCmd.PersistentFlags().StringVarP(&outDir, "out", "o", ".", "Directory to save downloads in")

	reportCmd.AddCommand(&cobra.Command{
		Use:   "excel",
		Short: "Download the full player list as Excel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveReport(cmd, "/api/users/export", outDir, "jugadores.xlsx")
		},
	})

	reportCmd.AddCommand(&cobra.Command{
		Use:   "word <manager-id>",
		Short: "Download a manager's roster report as Word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveReport(cmd, "/api/jugadores/reporte/"+args[0], outDir, "Reporte.docx")
		},
	})

	reportCmd.AddCommand(&cobra.Command{
		Use:   "pdf <manager-id>",
		Short: "Download a manager's roster report as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveReport(cmd, "/api/jugadores/reporte-pdf/"+args[0], outDir, "Reporte.pdf")
		},
	})

	reportCmd.AddCommand(&cobra.Command{
		Use:   "autorizaciones",
		Short: "Download the consolidated guardian-authorization PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveReport(cmd, "/api/admin/autorizaciones/consolidado", outDir, "autorizaciones_consolidado.pdf")
		},
	})

	return reportCmd
}

func saveReport(cmd *cobra.Command, path, dir, fallback string) error {
	dest, err := client.Download(path, dir, fallback)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", dest)
	return nil
}
