package main

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/xqtrack/apptracker/internal/kvstore"
	"github.com/xqtrack/apptracker/internal/logx"
	"github.com/xqtrack/apptracker/internal/model"
	"github.com/xqtrack/apptracker/internal/must"
	"github.com/xqtrack/apptracker/pkg/tracker"
)

// errDeliveryFailed indicates that the collector did not accept the request.
var errDeliveryFailed = errors.New("collector did not accept the request")

// globalOptions contains the flags shared by all the subcommands.
type globalOptions struct {
	apiURL      string
	appDomain   string
	lang        string
	screenCvars []string
	siteID      int
	stateDir    string
	timeout     time.Duration
	userAgent   string
	userID      string
	verbose     bool
	visitCvars  []string
	visitorID   string
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "apptrack",
		Short:         "Sends screen views and events to a Piwik collector",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api-url", "", "collector URL (MANDATORY)")
	flags.IntVar(&opts.siteID, "site-id", 0, "site ID (MANDATORY)")
	flags.StringVar(&opts.appDomain, "domain", "apptrack", "application domain used to build screen URLs")
	flags.StringVar(&opts.userID, "user-id", "", "user ID, from which we derive the visitor ID")
	flags.StringVar(&opts.visitorID, "visitor-id", "", "visitor ID as 16 lowercase hex digits")
	flags.StringVar(&opts.userAgent, "user-agent", "", "user agent to report")
	flags.StringVar(&opts.lang, "lang", "", "language to report (default: the host locale)")
	flags.StringArrayVar(&opts.visitCvars, "cvar", nil, "visit custom variable as INDEX=NAME=VALUE (repeatable)")
	flags.StringArrayVar(&opts.screenCvars, "screen-cvar", nil, "screen custom variable as INDEX=NAME=VALUE (repeatable)")
	flags.StringVar(&opts.stateDir, "state-dir", "", "directory where to persist the visitor ID")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug messages")
	root.AddCommand(newScreenCommand(opts))
	root.AddCommand(newEventCommand(opts))
	return root
}

// newClient creates the client and stages the fields named by the flags.
func (opts *globalOptions) newClient(logger model.Logger) (*tracker.Client, error) {
	config := &tracker.Config{
		APIURL:    opts.apiURL,
		SiteID:    opts.siteID,
		AppDomain: opts.appDomain,
		Logger:    logger,
		Timeout:   opts.timeout,
	}
	if opts.stateDir != "" {
		store, err := kvstore.NewFS(opts.stateDir)
		if err != nil {
			return nil, errors.Wrap(err, "cannot open the state directory")
		}
		config.IdentityStore = store
	}
	client, err := tracker.New(config)
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	if opts.userAgent != "" {
		client.SetUserAgent(opts.userAgent)
	}
	if opts.lang != "" {
		client.SetLanguage(opts.lang)
	}
	if opts.userID != "" {
		if err := client.SetUserID(opts.userID); err != nil {
			return nil, errors.Wrap(err, "--user-id")
		}
	}
	if opts.visitorID != "" {
		if err := client.SetVisitorID(opts.visitorID); err != nil {
			return nil, errors.Wrap(err, "--visitor-id")
		}
	}
	for _, value := range opts.visitCvars {
		if err := setCustomVariable(value, client.SetUserCustomVariable); err != nil {
			return nil, errors.Wrap(err, "--cvar")
		}
	}
	for _, value := range opts.screenCvars {
		if err := setCustomVariable(value, client.SetScreenCustomVariable); err != nil {
			return nil, errors.Wrap(err, "--screen-cvar")
		}
	}
	return client, nil
}

// setCustomVariable parses INDEX=NAME=VALUE and passes it to setter.
func setCustomVariable(value string, setter func(index int, name, value string) error) error {
	v := strings.SplitN(value, "=", 3)
	if len(v) != 3 {
		return errors.Errorf("expected INDEX=NAME=VALUE, got %q", value)
	}
	index, err := strconv.Atoi(v[0])
	if err != nil {
		return errors.Wrapf(err, "invalid index %q", v[0])
	}
	return setter(index, v[1], v[2])
}

// report logs the result, prints the request URL to w, and returns an
// error if the delivery failed.
func report(w io.Writer, client *tracker.Client, result *tracker.Result) error {
	log.WithFields(log.Fields{
		"type":       logx.TypeTable,
		"endpoint":   client.Endpoint(),
		"visitor_id": client.VisitorID(),
		"status":     model.ErrorToStringOrOK(result.Err),
	}).Info("apptrack")
	must.Fprintf(w, "%s\n", result.URL)
	if !result.OK() {
		return errors.Wrap(errDeliveryFailed, result.Err.Error())
	}
	return nil
}

// track creates a client, calls fx, and reports the result to w.
func (opts *globalOptions) track(w io.Writer, fx func(ctx context.Context, client *tracker.Client) (*tracker.Result, error)) error {
	client, err := opts.newClient(log.Log)
	if err != nil {
		return err
	}
	result, err := fx(context.Background(), client)
	if err != nil {
		return err
	}
	return report(w, client, result)
}
