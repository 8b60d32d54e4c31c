// Command s3pconcat fetches one S3 object per stdin line (bucket/key),
// bounded at --parallel concurrent downloads, and concatenates the bodies
// in input order.
package main

import (
	"context"

	"github.com/allada/pconcat/cli"
	"github.com/allada/pconcat/config"
	"github.com/allada/pconcat/errors"
	"github.com/allada/pconcat/source/s3"
	"github.com/allada/pconcat/task"
)

func main() {
	cli.Main("s3pconcat", func(ctx context.Context, cfg *config.Config) (task.Parser, error) {
		client, err := s3.NewClient(ctx, &cfg.S3)
		if err != nil {
			return nil, errors.InvalidConfig("cannot initialize s3 client").WithCause(err)
		}
		return client.Parse, nil
	})
}
