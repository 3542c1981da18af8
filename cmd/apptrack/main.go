// Command apptrack sends a single screen view or event to a Piwik collector,
// which is useful to check that a collector is correctly configured.
//
// Usage:
//
//	apptrack --api-url https://stats.example.com/ --site-id 3 screen /home --title Home
//	apptrack --api-url https://stats.example.com/ --site-id 3 event UIAction Click --value 1
package main

import (
	"os"

	"github.com/apex/log"
	"github.com/xqtrack/apptracker/internal/logx"
)

func main() {
	log.Log = &log.Logger{Level: log.InfoLevel, Handler: logx.NewHandler(os.Stderr)}
	if err := newRootCommand().Execute(); err != nil {
		log.WithError(err).Fatal("apptrack failed")
	}
}
