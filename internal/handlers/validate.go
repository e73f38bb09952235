package handlers

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation limits for dashboard form fields.
const (
	maxAppNameLen       = 100
	maxWebsiteURLLen    = 500
	maxPushTitleLen     = 100
	maxPushBodyLen      = 500
	maxTicketSubjectLen = 200
	maxTicketBodyLen    = 20_000
)

// hexColor matches #rgb and #rrggbb values.
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateAppInput checks app create/update inputs and returns the first
// error found, or "" when valid.
func validateAppInput(name, websiteURL string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "App name is required."
	}
	if utf8.RuneCountInString(name) > maxAppNameLen {
		return "App name is too long (max 100 characters)."
	}
	if utf8.RuneCountInString(websiteURL) > maxWebsiteURLLen {
		return "Website URL is too long (max 500 characters)."
	}
	if websiteURL != "" {
		u, err := url.Parse(websiteURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return "Website URL must be a valid http or https address."
		}
	}
	return ""
}

// validateColor checks an optional hex color value.
func validateColor(c string) string {
	if c != "" && !hexColor.MatchString(c) {
		return "Color must be a hex value like #2563eb."
	}
	return ""
}

// validatePushInput checks push notification compose fields.
func validatePushInput(title, body string) string {
	if strings.TrimSpace(title) == "" {
		return "Notification title is required."
	}
	if utf8.RuneCountInString(title) > maxPushTitleLen {
		return "Notification title is too long (max 100 characters)."
	}
	if strings.TrimSpace(body) == "" {
		return "Notification body is required."
	}
	if utf8.RuneCountInString(body) > maxPushBodyLen {
		return "Notification body is too long (max 500 characters)."
	}
	return ""
}

// validateTicketInput checks support ticket fields.
func validateTicketInput(subject, body string) string {
	if strings.TrimSpace(subject) == "" {
		return "Subject is required."
	}
	if utf8.RuneCountInString(subject) > maxTicketSubjectLen {
		return "Subject is too long (max 200 characters)."
	}
	return validateTicketBody(body)
}

// validateTicketBody checks a ticket message body on its own.
func validateTicketBody(body string) string {
	if strings.TrimSpace(body) == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(body) > maxTicketBodyLen {
		return "Message is too long (max 20,000 characters)."
	}
	return ""
}
