// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command blog-service serves blog posts. Reads are public; writes need an
// assertion issued by the user service and are limited to the post's author.
//
// Routes: GET|POST /blogs, GET|PUT|DELETE /blogs/{id}.
package main

import (
	"github.com/taibuivan/scribe/internal/api"
	"github.com/taibuivan/scribe/internal/blog"
	"github.com/taibuivan/scribe/internal/platform/bootstrap"
	"github.com/taibuivan/scribe/internal/platform/constants"
)

func main() {
	bootstrap.Run(bootstrap.Service{
		Name:          constants.ServiceBlog,
		Port:          "8002",
		MigrationPath: "./data/migrations/blog",
		VersionTable:  "blog_schema_migrations",
		Mount: func(deps bootstrap.Dependencies) []api.Route {
			service := blog.NewService(
				blog.NewPostgresRepository(deps.Pool),
				deps.Cache,
				deps.Config.CacheTTL,
				deps.Logger,
			)
			return []api.Route{
				{Prefix: "/blogs", Handler: blog.NewHandler(service).Routes(deps.Authenticate)},
			}
		},
	})
}
