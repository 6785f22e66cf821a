package middleware

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/whilp/neat/request"
	"github.com/whilp/neat/resource"
	"github.com/whilp/neat/response"
)

// Logging provides structured request logging without colors.
func Logging(next resource.Handler) resource.Handler {
	return func(r *request.Request) response.Response {
		now := time.Now()
		resp := next(r)

		fields := log.Fields{
			"method":   r.Method(),
			"path":     r.Path(),
			"duration": time.Since(now),
		}
		if resp != nil {
			fields["status"] = int(resp.GetStatusCode())
		}
		log.WithFields(fields).Info("request")

		return resp
	}
}

// LoggingColored provides colored logging.
func LoggingColored(next resource.Handler) resource.Handler {
	methodStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true).Background(lipgloss.Color("12")).Width(8).Align(lipgloss.Center)

	return func(r *request.Request) response.Response {
		now := time.Now()
		resp := next(r)

		statusCode := 200
		if resp != nil {
			statusCode = int(resp.GetStatusCode())
		}

		statusStyle := getStatusCodeStyle(statusCode)
		styledStatus := statusStyle.Render(fmt.Sprintf("%d", statusCode))
		styledMethod := methodStyle.Render(r.Method())

		log.Infof("%s %s %s in %s", styledMethod, r.Path(), styledStatus, time.Since(now))

		return resp
	}
}

// getStatusCodeStyle returns a lipgloss style for HTTP status codes
func getStatusCodeStyle(statusCode int) lipgloss.Style {
	switch {
	case statusCode >= 200 && statusCode < 300:
		// 2xx Success - Green
		return lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	case statusCode >= 300 && statusCode < 400:
		// 3xx Redirection - Yellow
		return lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	case statusCode >= 400 && statusCode < 500:
		// 4xx Client Error - Orange/Red
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	case statusCode >= 500:
		// 5xx Server Error - Bright Red
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	default:
		// Unknown status codes - White
		return lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	}
}
