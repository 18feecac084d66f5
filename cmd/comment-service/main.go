// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command comment-service stores comments on blog posts.
//
// Routes: GET /comments?post_id={id}, POST /comments.
package main

import (
	"github.com/taibuivan/scribe/internal/api"
	"github.com/taibuivan/scribe/internal/comment"
	"github.com/taibuivan/scribe/internal/platform/bootstrap"
	"github.com/taibuivan/scribe/internal/platform/constants"
)

func main() {
	bootstrap.Run(bootstrap.Service{
		Name:          constants.ServiceComment,
		Port:          "8003",
		MigrationPath: "./data/migrations/comment",
		VersionTable:  "comment_schema_migrations",
		Mount: func(deps bootstrap.Dependencies) []api.Route {
			service := comment.NewService(comment.NewPostgresRepository(deps.Pool), deps.Logger)
			return []api.Route{
				{Prefix: "/comments", Handler: comment.NewHandler(service).Routes(deps.Authenticate)},
			}
		},
	})
}
