package cli

import (
	"fmt"

	"github.com/stamptrail/stampbook/internal/api"
	"github.com/stamptrail/stampbook/internal/config"
	"github.com/stamptrail/stampbook/internal/session"
)

// bootstrap wires the pieces every command needs: config, the restored
// session, and an API client bound to the session's token.
func bootstrap() (*config.Config, *session.Store, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	sessionPath, err := session.DefaultSessionPath()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to locate session file: %w", err)
	}

	sess := session.NewStore(session.NewFileTokenStore(sessionPath))
	sess.Initialize()

	client := api.NewClient(cfg.ServerURL, sess.Token)
	return cfg, sess, client, nil
}
