package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/sales-ledger/internal/application/inventory"
	"github.com/jhoicas/sales-ledger/internal/application/usecase"
	"github.com/jhoicas/sales-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/sales-ledger/internal/interfaces/cli"
	"github.com/jhoicas/sales-ledger/pkg/config"
	"github.com/jhoicas/sales-ledger/pkg/logger"
)

// NewRootCmd crea el comando raíz. Sin flags se comporta como el programa original:
// abre sales_products.db en el directorio actual y muestra el menú.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ledger",
		Short:         "Interactive inventory and sales ledger",
		Long:          "ledger keeps products and their sales in a local SQLite file and is driven by a numbered menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd)
		},
	}
	cmd.Flags().String("db", config.DefaultDBPath, "path to the SQLite database file")
	cmd.Flags().String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	db, err := sqlite.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DB.Path).Msg("inicialización de la base de datos")
	}
	defer db.Close()

	productRepo := sqlite.NewProductRepository(db)
	saleRepo := sqlite.NewSaleRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	productUC := usecase.NewProductUseCase(productRepo, txRunner, log)
	recordSaleUC := inventory.NewRecordSaleUseCase(txRunner, saleRepo, log)

	in := newLineReader(cmd, log)
	defer in.Close()

	menu := cli.NewMenu(cli.MenuDeps{
		ProductUC:  productUC,
		RecordSale: recordSaleUC,
		In:         in,
		Out:        cmd.OutOrStdout(),
		Log:        log,
	})
	if err := menu.Run(ctx); err != nil {
		return err
	}

	log.Info().Msg("aplicación detenida")
	return nil
}

// newLineReader usa readline en una terminal y un lector simple si la entrada viene de un pipe
// o si readline no se puede inicializar.
func newLineReader(cmd *cobra.Command, log *logger.Logger) cli.LineReader {
	stat, err := os.Stdin.Stat()
	if err == nil && stat.Mode()&os.ModeCharDevice != 0 && cmd.InOrStdin() == os.Stdin {
		rl, err := cli.NewTerminalReader()
		if err == nil {
			return rl
		}
		log.Warn().Err(err).Msg("readline no disponible, se usa lectura simple")
	}
	return cli.NewScannerReader(cmd.InOrStdin(), cmd.OutOrStdout())
}
