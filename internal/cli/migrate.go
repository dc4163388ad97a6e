package cli

import (
	"github.com/deppfellow/sweets/internal/database"
	"github.com/spf13/cobra"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(opts)
			if err != nil {
				return err
			}
			defer rt.loggerService.Shutdown()

			return database.Migrate(cmd.Context(), &rt.log, rt.cfg)
		},
	}
}
