// Package firebaseapp owns the process-lifetime Firebase app handle and the
// clients derived from it.
package firebaseapp

import (
	"context"
	"log/slog"

	"petkeeper/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the parameters required for the Firebase app
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New initialises the Firebase app once for the whole process
func New(params Params) (*firebase.App, error) {
	var (
		appConfig *firebase.Config
		opts      []option.ClientOption
	)

	if fbCfg := params.Config.Firebase; fbCfg != nil {
		if fbCfg.ProjectID != "" {
			appConfig = &firebase.Config{ProjectID: fbCfg.ProjectID}
		}
		if fbCfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(fbCfg.CredentialsPath))
		}
	}

	app, err := firebase.NewApp(params.Ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.Bool("explicit_credentials", len(opts) > 0))

	return app, nil
}

// NewMessagingClient returns the FCM client of app
func NewMessagingClient(ctx context.Context, app *firebase.App) (*messaging.Client, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}

// NewAuthClient returns the Firebase Auth client of app
func NewAuthClient(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return client, nil
}

// FirestoreParams defines the parameters required for the Firestore client
type FirestoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// NewFirestoreClient returns the Firestore client of app and closes it on shutdown
func NewFirestoreClient(params FirestoreParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if err := client.Close(); err != nil {
				params.Logger.Warn("Failed to close firestore client", slog.Any("error", err))
			}

			return nil
		},
	})

	return client, nil
}
