package tracker

import "strings"

// scriptName is the collector script we append to the API URL.
const scriptName = "piwik.php"

// acceptedScripts are the script names we accept at the end of the API URL.
var acceptedScripts = []string{scriptName, "piwik-proxy.php"}

// normalizeEndpoint returns the URL of the collector script given the
// API URL, which may either be the script URL or the base URL.
func normalizeEndpoint(apiURL string) string {
	for _, script := range acceptedScripts {
		if strings.HasSuffix(apiURL, script) {
			return apiURL
		}
	}
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	return apiURL + scriptName
}

// resolveURL returns the absolute URL to report given the value of the
// url field. The empty string means that there is nothing to report.
func resolveURL(appDomain, value string) string {
	switch {
	case value == "":
		return ""
	case strings.HasPrefix(value, "http://"), strings.HasPrefix(value, "https://"):
		return value
	case !strings.HasPrefix(value, "/"):
		value = "/" + value
	}
	return "http://" + appDomain + value
}
