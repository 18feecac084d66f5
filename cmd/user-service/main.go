// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command user-service registers and authenticates users and is the only
// issuer of identity assertions.
//
// Routes: POST /users, POST /users/login, GET|PUT|DELETE /users/{id}.
package main

import (
	"github.com/taibuivan/scribe/internal/account"
	"github.com/taibuivan/scribe/internal/api"
	"github.com/taibuivan/scribe/internal/platform/bootstrap"
	"github.com/taibuivan/scribe/internal/platform/constants"
)

func main() {
	bootstrap.Run(bootstrap.Service{
		Name:          constants.ServiceUser,
		Port:          "8001",
		MigrationPath: "./data/migrations/user",
		VersionTable:  "user_schema_migrations",
		Mount: func(deps bootstrap.Dependencies) []api.Route {
			service := account.NewService(
				account.NewPostgresUserRepository(deps.Pool),
				deps.Codec,
				deps.Cache,
				deps.Config.CacheTTL,
				deps.Logger,
			)
			return []api.Route{
				{Prefix: "/users", Handler: account.NewHandler(service).Routes(deps.Authenticate)},
			}
		},
	})
}
