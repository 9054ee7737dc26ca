package main

import (
	"github.com/urfave/cli/v2"

	"github.com/tamaliftics/backend/migration"
)

func (s *srv) migrate(cliCtx *cli.Context) error {
	if err := s.loadConfig(cliCtx); err != nil {
		return err
	}
	s.loadLogger()
	if err := s.loadDatabase(); err != nil {
		return err
	}

	return migration.Migrate(s.ctx)
}
