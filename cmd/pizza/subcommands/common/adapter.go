package common

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/cartfile"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/profiles"
	"github.com/pizza-net/pizza-frontend/cmd/pizza/config/session"
	krst "github.com/pizza-net/pizza-frontend/cmd/pizza/rest"
	"github.com/youta-t/flarc"
)

type TaskWithCommonFlag[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTaskWithCommonFlag[T any](task TaskWithCommonFlag[T]) flarc.Task[T] {
	return func(ctx context.Context, cl flarc.Commandline[T], pos []any) error {
		var commonFlag CommonFlags
		found := false
		newpos := make([]any, 0, len(pos))
		for _, p := range pos {
			switch v := p.(type) {
			case CommonFlags:
				found = true
				commonFlag = v
			default:
				newpos = append(newpos, p)
			}
		}
		if !found {
			return errors.New("programming error: common flags not found")
		}

		logger := log.New(cl.Stderr(), "", log.LstdFlags)
		logger.SetPrefix(fmt.Sprintf("[%s] ", cl.Fullname()))

		return task(
			ctx,
			logger,
			commonFlag,
			cl,
			newpos,
		)
	}
}

// Client builds a StorefrontClient for the profile named in commonFlag.
//
// Commands that establish the session themselves (login, register) use
// this directly, with no session options; everything else goes through
// NewTask.
func Client(commonFlag CommonFlags, options ...krst.Option) (krst.StorefrontClient, error) {
	profile, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileStoreNotFound) {
			return nil, fmt.Errorf(
				"%w: profile store (%s) is not found. Please try `pizza init` first",
				err, commonFlag.ProfileStore,
			)
		}
		return nil, fmt.Errorf(
			"%w: failed to load profile store (%s)",
			err, commonFlag.ProfileStore,
		)
	}
	prof, ok := profile[commonFlag.Profile]
	if !ok {
		return nil, fmt.Errorf(
			"profile '%s' not found in the profile store (%s)",
			commonFlag.Profile, commonFlag.ProfileStore,
		)
	}

	client, err := krst.NewClient(prof, options...)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: failed to create client. Your profile (%s in %s) can be broken.\n\nRemove it and try `pizza init` again",
			err, commonFlag.Profile, commonFlag.ProfileStore,
		)
	}
	return client, nil
}

type Task[T any] func(
	ctx context.Context,
	logger *log.Logger,
	sess session.Session,
	cartStore *cartfile.Store,
	client krst.StorefrontClient,
	cl flarc.Commandline[T],
	params []any,
) error

// NewTask wraps a Task with the standard plumbing: it resolves the
// profile, picks up the stored session (anonymous if there is none),
// and builds a StorefrontClient whose forced-logout hook drops the
// session file.
func NewTask[T any](task Task[T]) flarc.Task[T] {

	return NewTaskWithCommonFlag(func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag CommonFlags,
		cl flarc.Commandline[T],
		params []any,
	) error {
		sessionStore := session.NewStore(commonFlag.Session)
		sess, err := sessionStore.Load()
		if err != nil && !errors.Is(err, session.ErrNotLoggedIn) {
			return fmt.Errorf("%w: failed to load session", err)
		}

		client, err := Client(
			commonFlag,
			krst.WithToken(func() string { return sess.Token }),
			krst.WithForcedLogoutHook(sessionStore.Clear),
		)
		if err != nil {
			return err
		}
		return task(
			ctx, logger, sess, cartfile.NewStore(commonFlag.Cart), client, cl, params,
		)
	})
}
